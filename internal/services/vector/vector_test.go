package vector_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katgen/internal/services/vector"
)

func TestBlockFromHex(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		b, err := vector.BlockFromHex("000102030405060708090a0b0c0d0e0f")
		require.NoError(t, err)
		assert.Equal(t, "000102030405060708090a0b0c0d0e0f", b.Hex())
	})

	t.Run("uppercase normalized", func(t *testing.T) {
		b, err := vector.BlockFromHex("2B7E151628AED2A6ABF7158809CF4F3C")
		require.NoError(t, err)
		assert.Equal(t, "2b7e151628aed2a6abf7158809cf4f3c", b.Hex())
	})

	tests := []struct {
		name string
		in   string
	}{
		{"too short", "0011"},
		{"too long", "000102030405060708090a0b0c0d0e0f00"},
		{"odd length", "000102030405060708090a0b0c0d0e0"},
		{"not hex", "gg0102030405060708090a0b0c0d0e0f"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vector.BlockFromHex(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestBlockFromBytes(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		raw := make([]byte, vector.BlockSize)
		raw[0], raw[15] = 0xab, 0xcd
		b, err := vector.BlockFromBytes(raw)
		require.NoError(t, err)
		assert.Equal(t, byte(0xab), b[0])
		assert.Equal(t, byte(0xcd), b[15])
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := vector.BlockFromBytes(make([]byte, 17))
		assert.Error(t, err)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := vector.BlockFromBytes(nil)
		assert.Error(t, err)
	})
}

func mustBlockT(t *testing.T, s string) vector.Block {
	t.Helper()
	b, err := vector.BlockFromHex(s)
	require.NoError(t, err)
	return b
}

func TestSetToTXT(t *testing.T) {
	set := vector.Set{
		{
			Key:        mustBlockT(t, "000102030405060708090a0b0c0d0e0f"),
			Plaintext:  mustBlockT(t, "00112233445566778899aabbccddeeff"),
			Ciphertext: mustBlockT(t, "69c4e0d86a7b0430d8cdb78070b4c55a"),
		},
		{
			Key:        mustBlockT(t, "2b7e151628aed2a6abf7158809cf4f3c"),
			Plaintext:  mustBlockT(t, "6bc1bee22e409f96e93d7e117393172a"),
			Ciphertext: mustBlockT(t, "3ad77bb40d7a3660a89ecaf32466ef97"),
		},
	}

	txt := set.ToTXT()

	want := "000102030405060708090a0b0c0d0e0f 00112233445566778899aabbccddeeff 69c4e0d86a7b0430d8cdb78070b4c55a\n" +
		"2b7e151628aed2a6abf7158809cf4f3c 6bc1bee22e409f96e93d7e117393172a 3ad77bb40d7a3660a89ecaf32466ef97\n"
	assert.Equal(t, want, txt)

	t.Run("line shape", func(t *testing.T) {
		require.True(t, strings.HasSuffix(txt, "\n"))
		lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n")
		require.Len(t, lines, len(set))
		for _, line := range lines {
			fields := strings.Split(line, " ")
			require.Len(t, fields, 3)
			for _, f := range fields {
				assert.Len(t, f, 32)
				assert.Equal(t, strings.ToLower(f), f)
			}
		}
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, "", vector.Set{}.ToTXT())
	})
}

func TestSetWriteFile(t *testing.T) {
	set := vector.Set{
		{
			Key:        mustBlockT(t, "000102030405060708090a0b0c0d0e0f"),
			Plaintext:  mustBlockT(t, "00112233445566778899aabbccddeeff"),
			Ciphertext: mustBlockT(t, "69c4e0d86a7b0430d8cdb78070b4c55a"),
		},
	}

	t.Run("writes content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "vectors.txt")

		n, err := set.WriteFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, set.ToTXT(), string(data))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		_, err := set.WriteFile(filepath.Join(dir, "vectors.txt"))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "vectors.txt", entries[0].Name())
	})

	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "vectors.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

		_, err := set.WriteFile(path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, set.ToTXT(), string(data))
	})

	t.Run("empty set rejected", func(t *testing.T) {
		_, err := vector.Set{}.WriteFile(filepath.Join(t.TempDir(), "vectors.txt"))
		assert.ErrorIs(t, err, vector.ErrCount)
	})

	t.Run("unwritable directory", func(t *testing.T) {
		_, err := set.WriteFile(filepath.Join(t.TempDir(), "missing", "vectors.txt"))
		assert.Error(t, err)
	})
}
