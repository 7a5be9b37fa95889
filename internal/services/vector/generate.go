package vector

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"katgen/internal/oracle"
)

// The FIPS-197 appendix C.1 known answer pair. Every generated set opens
// with this vector so a downstream consumer can validate its own cipher
// before trusting the random ones.
const (
	KnownAnswerKeyHex        = "000102030405060708090a0b0c0d0e0f"
	KnownAnswerPlaintextHex  = "00112233445566778899aabbccddeeff"
	KnownAnswerCiphertextHex = "69c4e0d86a7b0430d8cdb78070b4c55a"
)

// DefaultCount is how many vectors a run produces when the caller does
// not say otherwise.
const DefaultCount = 20

var (
	// ErrCount rejects generation requests for fewer than one vector.
	ErrCount = errors.New("vector count must be at least 1")

	// ErrKnownAnswer means the oracle disagreed with the FIPS-197 known
	// answer ciphertext. The oracle cannot be trusted and the whole run
	// is discarded.
	ErrKnownAnswer = errors.New("known answer ciphertext mismatch")
)

// Generator produces sets of AES-128 ECB test vectors. The first vector
// of every set is the known answer pair, checked against the oracle; the
// rest use fresh random keys and plaintexts.
type Generator struct {
	oracle oracle.Oracle
	rand   io.Reader
}

// NewGenerator returns a Generator backed by the given oracle, drawing
// randomness from crypto/rand.
func NewGenerator(o oracle.Oracle) *Generator {
	return &Generator{oracle: o, rand: rand.Reader}
}

// WithRand swaps the randomness source. Tests use this to inject failing
// or deterministic readers; production code never should.
func (g *Generator) WithRand(r io.Reader) *Generator {
	g.rand = r
	return g
}

// Generate produces n vectors: the known answer vector followed by n-1
// random ones. Any oracle or randomness failure aborts the run; there is
// no partial result.
func (g *Generator) Generate(n int) (Set, error) {
	if n < 1 {
		return nil, ErrCount
	}

	set := make(Set, 0, n)

	kat, err := g.knownAnswer()
	if err != nil {
		return nil, fmt.Errorf("known answer vector: %w", err)
	}
	set = append(set, kat)

	for i := 1; i < n; i++ {
		v, err := g.random()
		if err != nil {
			return nil, fmt.Errorf("random vector %d: %w", i, err)
		}
		set = append(set, v)
	}

	return set, nil
}

// knownAnswer encrypts the FIPS-197 pair through the oracle and verifies
// the result against the published ciphertext.
func (g *Generator) knownAnswer() (Vector, error) {
	v := Vector{
		Key:       mustBlock(KnownAnswerKeyHex),
		Plaintext: mustBlock(KnownAnswerPlaintextHex),
	}

	ct, err := g.encrypt(v.Key, v.Plaintext)
	if err != nil {
		return Vector{}, err
	}
	v.Ciphertext = ct

	if want := mustBlock(KnownAnswerCiphertextHex); v.Ciphertext != want {
		return Vector{}, fmt.Errorf("%w: got %s, want %s", ErrKnownAnswer, v.Ciphertext.Hex(), want.Hex())
	}
	return v, nil
}

// random draws a fresh key and plaintext and encrypts them.
func (g *Generator) random() (Vector, error) {
	var v Vector
	if _, err := io.ReadFull(g.rand, v.Key[:]); err != nil {
		return Vector{}, fmt.Errorf("draw key: %w", err)
	}
	if _, err := io.ReadFull(g.rand, v.Plaintext[:]); err != nil {
		return Vector{}, fmt.Errorf("draw plaintext: %w", err)
	}

	ct, err := g.encrypt(v.Key, v.Plaintext)
	if err != nil {
		return Vector{}, err
	}
	v.Ciphertext = ct
	return v, nil
}

// encrypt runs one block through the oracle and re-checks the output
// length before trusting it.
func (g *Generator) encrypt(key, pt Block) (Block, error) {
	out, err := g.oracle.EncryptBlock(key[:], pt[:])
	if err != nil {
		return Block{}, err
	}
	ct, err := BlockFromBytes(out)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %v", oracle.ErrBadOutput, err)
	}
	return ct, nil
}
