package oracle

import (
	"crypto/aes"
	"fmt"
)

// Builtin encrypts in process with Go's crypto/aes. It honors the same
// contract as the subprocess backing and suits environments without an
// openssl binary, including tests.
type Builtin struct{}

func (Builtin) EncryptBlock(key, plaintext []byte) ([]byte, error) {
	if err := checkArgs(key, plaintext); err != nil {
		return nil, err
	}
	blk, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecFailed, err)
	}
	ct := make([]byte, BlockSize)
	blk.Encrypt(ct, plaintext)
	return ct, nil
}
