package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCategories(t *testing.T) {
	assert.Equal(t, "", EncodeCategories(nil))
	assert.Equal(t, "", EncodeCategories([]string{}))
	assert.Equal(t, "Sports", EncodeCategories([]string{"Sports"}))
	assert.Equal(t, "Weather,Sports,Finance", EncodeCategories([]string{"Weather", "Sports", "Finance"}))
}

func TestDecodeCategories(t *testing.T) {
	assert.Nil(t, DecodeCategories(""))
	assert.Equal(t, []string{"Sports"}, DecodeCategories("Sports"))
	assert.Equal(t, []string{"Weather", "Sports"}, DecodeCategories("Weather,Sports"))

	// Whitespace and empty elements are discarded
	assert.Equal(t, []string{"Weather", "Sports"}, DecodeCategories(" Weather , Sports "))
	assert.Equal(t, []string{"Sports"}, DecodeCategories(",Sports,,  ,"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	labels := []string{"Weather", "Sports", "Finance"}
	decoded := DecodeCategories(EncodeCategories(labels))

	sort.Strings(labels)
	sort.Strings(decoded)
	assert.Equal(t, labels, decoded)
}

func TestCategoriesScan(t *testing.T) {
	var c Categories

	require.NoError(t, c.Scan("Weather,Sports"))
	assert.Equal(t, Categories{"Weather", "Sports"}, c)

	require.NoError(t, c.Scan([]byte("Finance")))
	assert.Equal(t, Categories{"Finance"}, c)

	require.NoError(t, c.Scan(nil))
	assert.Nil(t, c)

	assert.Error(t, c.Scan(42))
}

func TestCategoriesValue(t *testing.T) {
	value, err := Categories{"Weather", "Sports"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "Weather,Sports", value)

	value, err = Categories(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestCategoryPredicate(t *testing.T) {
	fragment, args := CategoryPredicate("Sports")
	assert.Contains(t, fragment, "LIKE")
	assert.Equal(t, []any{"Sports"}, args)
}
