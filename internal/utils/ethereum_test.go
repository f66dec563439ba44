package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEthereumAddress(t *testing.T) {
	assert.True(t, IsValidEthereumAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	assert.True(t, IsValidEthereumAddress("0x0000000000000000000000000000000000000000"))

	assert.False(t, IsValidEthereumAddress(""))
	assert.False(t, IsValidEthereumAddress("0x123"))
	assert.False(t, IsValidEthereumAddress("f39Fd6e51aad88F6F4ce6aB8827279cffFb9226"))
	assert.False(t, IsValidEthereumAddress("0xZZZZd6e51aad88F6F4ce6aB8827279cffFb92266"))
}

func TestIsValidTransactionHash(t *testing.T) {
	assert.True(t, IsValidTransactionHash("0x4a1b9e52d0c357fd23878218f3e2e4b7f71b52a1c86a5ae0a97c6b9f2d1e0c3b"))

	assert.False(t, IsValidTransactionHash(""))
	assert.False(t, IsValidTransactionHash("0x1234"))
	// Missing 0x prefix
	assert.False(t, IsValidTransactionHash("4a1b9e52d0c357fd23878218f3e2e4b7f71b52a1c86a5ae0a97c6b9f2d1e0c3b00"))
	// Non-hex characters
	assert.False(t, IsValidTransactionHash("0xzz1b9e52d0c357fd23878218f3e2e4b7f71b52a1c86a5ae0a97c6b9f2d1e0c3b"))
}
