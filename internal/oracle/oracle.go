// Package oracle invokes a trusted AES-128 single-block (ECB) encryption
// primitive. The cipher itself is never reimplemented here; implementations
// only frame the call and validate its output.
package oracle

import (
	"errors"
	"fmt"
	"strings"
)

// BlockSize is the AES block size and the AES-128 key size in bytes.
const BlockSize = 16

// Oracle encrypts exactly one block. Same key and plaintext always yield
// the same ciphertext; there is no padding and no chaining.
type Oracle interface {
	EncryptBlock(key, plaintext []byte) ([]byte, error)
}

// Sentinel errors, matched with errors.Is.
var (
	// ErrBlockSize means the caller supplied a key or plaintext whose
	// length is not exactly 16 bytes. Checked before any invocation.
	ErrBlockSize = errors.New("key and plaintext must be exactly 16 bytes")

	// ErrUnavailable means the backing primitive could not be invoked at
	// all (binary missing, not executable).
	ErrUnavailable = errors.New("encryption oracle unavailable")

	// ErrExecFailed means the primitive ran but reported failure; the
	// wrapped message carries its diagnostic output.
	ErrExecFailed = errors.New("encryption oracle failed")

	// ErrBadOutput means the primitive reported success but returned
	// something other than one 16-byte block. Never truncated or padded.
	ErrBadOutput = errors.New("encryption oracle returned a malformed block")
)

// Func adapts a plain function to the Oracle interface.
type Func func(key, plaintext []byte) ([]byte, error)

func (f Func) EncryptBlock(key, plaintext []byte) ([]byte, error) {
	return f(key, plaintext)
}

// Select returns the backing named by name: "openssl" for the external
// command (the default), "builtin" for the in-process implementation.
// bin overrides the openssl binary path and may be empty.
func Select(name, bin string) (Oracle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "openssl":
		return NewOpenSSL(bin), nil
	case "builtin":
		return Builtin{}, nil
	default:
		return nil, fmt.Errorf("unknown oracle %q (want openssl or builtin)", name)
	}
}

func checkArgs(key, plaintext []byte) error {
	if len(key) != BlockSize || len(plaintext) != BlockSize {
		return fmt.Errorf("%w: key=%d plaintext=%d", ErrBlockSize, len(key), len(plaintext))
	}
	return nil
}
