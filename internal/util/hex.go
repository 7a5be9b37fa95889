package util

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// NormalizeHex lowercases s and strips surrounding whitespace and inner
// spaces, so hand-pasted hex ("2B7E 1516 ...") compares cleanly.
func NormalizeHex(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// DecodeHexN decodes s into exactly n bytes; any other length or a
// non-hex character is an error.
func DecodeHexN(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(NormalizeHex(s))
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("expected %d bytes of hex, got %d", n, len(b))
	}
	return b, nil
}
