package utils

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// has0xPrefix validates str begins with '0x' or '0X'.
func has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// Hex2Bytes supports hex string with or without 0x prefix. An odd number of
// digits is left padded with a 0.
func Hex2Bytes(s string) ([]byte, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	// hexutil.Decode expects an even-length string
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hexutil.Decode("0x" + s)
}

// ParseUint64 accepts a decimal string or a 0x-prefixed hex number. Leading
// zeros are allowed in both forms.
func ParseUint64(s string) (uint64, error) {
	if has0xPrefix(s) {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
