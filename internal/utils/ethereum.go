package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func IsValidEthereumAddress(address string) bool {
	return common.IsHexAddress(address)
}

// IsValidTransactionHash reports whether h is a 32-byte 0x-prefixed hash.
func IsValidTransactionHash(h string) bool {
	if !strings.HasPrefix(h, "0x") || len(h) != 66 {
		return false
	}
	_, err := hexutil.Decode(h)
	return err == nil
}
