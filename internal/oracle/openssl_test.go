package oracle_test

import (
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katgen/internal/oracle"
)

// fakeBin writes an executable shell script to a temp dir and returns its
// path. Used to simulate openssl behaviors without depending on it.
func fakeBin(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses POSIX shell scripts")
	}
	path := filepath.Join(t.TempDir(), "fake-openssl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestOpenSSL_MissingBinary(t *testing.T) {
	orc := oracle.NewOpenSSL(filepath.Join(t.TempDir(), "no-such-binary"))
	_, err := orc.EncryptBlock(make([]byte, 16), make([]byte, 16))
	assert.ErrorIs(t, err, oracle.ErrUnavailable)
}

func TestOpenSSL_BlockSizeCheckedFirst(t *testing.T) {
	// A bogus binary path must not matter: argument validation runs
	// before any process is spawned.
	orc := oracle.NewOpenSSL(filepath.Join(t.TempDir(), "no-such-binary"))
	_, err := orc.EncryptBlock(make([]byte, 8), make([]byte, 16))
	assert.ErrorIs(t, err, oracle.ErrBlockSize)
}

func TestOpenSSL_ExecFailure(t *testing.T) {
	orc := oracle.NewOpenSSL(fakeBin(t, `echo "enc: unsupported option" >&2; exit 1`))
	_, err := orc.EncryptBlock(make([]byte, 16), make([]byte, 16))
	assert.ErrorIs(t, err, oracle.ErrExecFailed)
	assert.Contains(t, err.Error(), "unsupported option")
}

func TestOpenSSL_ExecFailureWithoutStderr(t *testing.T) {
	orc := oracle.NewOpenSSL(fakeBin(t, `exit 3`))
	_, err := orc.EncryptBlock(make([]byte, 16), make([]byte, 16))
	assert.ErrorIs(t, err, oracle.ErrExecFailed)
}

func TestOpenSSL_ShortOutput(t *testing.T) {
	orc := oracle.NewOpenSSL(fakeBin(t, `printf 'abc'`))
	_, err := orc.EncryptBlock(make([]byte, 16), make([]byte, 16))
	assert.ErrorIs(t, err, oracle.ErrBadOutput)
}

func TestOpenSSL_LongOutput(t *testing.T) {
	orc := oracle.NewOpenSSL(fakeBin(t, `printf 'aaaaaaaaaaaaaaaabbbbbbbbbbbbbbbb'`))
	_, err := orc.EncryptBlock(make([]byte, 16), make([]byte, 16))
	assert.ErrorIs(t, err, oracle.ErrBadOutput)
}

func TestOpenSSL_PassesThroughBlock(t *testing.T) {
	orc := oracle.NewOpenSSL(fakeBin(t, `printf 'aaaaaaaaaaaaaaaa'`))
	out, err := orc.EncryptBlock(make([]byte, 16), make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, []byte("aaaaaaaaaaaaaaaa"), out)
}

// TestOpenSSL_RealBinary checks the actual openssl tool against the
// FIPS-197 known answer when one is installed.
func TestOpenSSL_RealBinary(t *testing.T) {
	if _, err := exec.LookPath("openssl"); err != nil {
		t.Skip("openssl not installed")
	}

	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	pt, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	orc := oracle.NewOpenSSL("")
	got, err := orc.EncryptBlock(key, pt)
	require.NoError(t, err)
	assert.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", hex.EncodeToString(got))
}
