package oracle

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// OpenSSL shells out to the openssl command-line tool, one short-lived
// process per block. This is the historical backing for the corpus tool.
type OpenSSL struct {
	bin string
}

// NewOpenSSL returns an oracle invoking bin; an empty bin resolves
// "openssl" from PATH.
func NewOpenSSL(bin string) *OpenSSL {
	if bin == "" {
		bin = "openssl"
	}
	return &OpenSSL{bin: bin}
}

// EncryptBlock runs `openssl enc -aes-128-ecb -K <key-hex> -nosalt -nopad`
// with the plaintext block on stdin. -nosalt keeps the header out of the
// stream and -nopad keeps the output at exactly one block.
func (o *OpenSSL) EncryptBlock(key, plaintext []byte) ([]byte, error) {
	if err := checkArgs(key, plaintext); err != nil {
		return nil, err
	}
	cmd := exec.Command(o.bin, "enc", "-aes-128-ecb", "-K", hex.EncodeToString(key), "-nosalt", "-nopad")
	cmd.Stdin = bytes.NewReader(plaintext)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = err.Error()
			}
			return nil, fmt.Errorf("%w: %s", ErrExecFailed, msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	ct := stdout.Bytes()
	if len(ct) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBadOutput, len(ct), BlockSize)
	}
	return ct, nil
}
