// Package vector produces known-answer corpora for single-block AES-128
// (ECB) encryption: one canonical vector followed by freshly randomized
// ones, every ciphertext obtained from a trusted encryption oracle.
package vector

import (
	"encoding/hex"
	"fmt"
	"strings"

	"katgen/internal/util"
)

// BlockSize is the AES block size and the AES-128 key size in bytes.
const BlockSize = 16

// Block is one AES block (or one AES-128 key): exactly 16 bytes, always.
type Block [BlockSize]byte

// Hex renders the block as 32 lowercase hex characters.
func (b Block) Hex() string {
	return hex.EncodeToString(b[:])
}

// BlockFromHex parses exactly 32 hex characters into a Block.
func BlockFromHex(s string) (Block, error) {
	var b Block
	raw, err := util.DecodeHexN(s, BlockSize)
	if err != nil {
		return b, fmt.Errorf("parse block: %w", err)
	}
	copy(b[:], raw)
	return b, nil
}

// BlockFromBytes copies p into a Block; any length other than 16 bytes is
// a contract violation.
func BlockFromBytes(p []byte) (Block, error) {
	var b Block
	if len(p) != BlockSize {
		return b, fmt.Errorf("block must be %d bytes, got %d", BlockSize, len(p))
	}
	copy(b[:], p)
	return b, nil
}

func mustBlock(s string) Block {
	b, err := BlockFromHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Vector is one (key, plaintext, ciphertext) triple. Immutable once built;
// it has no identity beyond its position in a Set.
type Vector struct {
	Key        Block
	Plaintext  Block
	Ciphertext Block
}

// Set is an ordered corpus of vectors. Element 0 is always the known-answer
// vector; the rest are independently random.
type Set []Vector

// ToTXT renders the corpus in its on-disk form: one vector per line as
// three space-separated 32-character lowercase hex fields, ending with a
// trailing newline.
func (s Set) ToTXT() string {
	var b strings.Builder
	for _, v := range s {
		b.WriteString(v.Key.Hex())
		b.WriteByte(' ')
		b.WriteString(v.Plaintext.Hex())
		b.WriteByte(' ')
		b.WriteString(v.Ciphertext.Hex())
		b.WriteByte('\n')
	}
	return b.String()
}
