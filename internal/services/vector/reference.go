package vector

import "katgen/internal/oracle"

// Reference is one published AES-128 ECB single-block pair used to vet an
// oracle before generation.
type Reference struct {
	Name       string
	Key        Block
	Plaintext  Block
	Ciphertext Block
}

// References returns the published pairs: the FIPS-197 appendix C.1
// example and the four SP 800-38A F.1.1 ECB-AES128 blocks.
func References() []Reference {
	return []Reference{
		{
			Name:       "FIPS-197 C.1",
			Key:        mustBlock(KnownAnswerKeyHex),
			Plaintext:  mustBlock(KnownAnswerPlaintextHex),
			Ciphertext: mustBlock(KnownAnswerCiphertextHex),
		},
		{
			Name:       "F.1.1 ECB-AES128.Encrypt block 1",
			Key:        mustBlock("2b7e151628aed2a6abf7158809cf4f3c"),
			Plaintext:  mustBlock("6bc1bee22e409f96e93d7e117393172a"),
			Ciphertext: mustBlock("3ad77bb40d7a3660a89ecaf32466ef97"),
		},
		{
			Name:       "F.1.1 ECB-AES128.Encrypt block 2",
			Key:        mustBlock("2b7e151628aed2a6abf7158809cf4f3c"),
			Plaintext:  mustBlock("ae2d8a571e03ac9c9eb76fac45af8e51"),
			Ciphertext: mustBlock("f5d3d58503b9699de785895a96fdbaaf"),
		},
		{
			Name:       "F.1.1 ECB-AES128.Encrypt block 3",
			Key:        mustBlock("2b7e151628aed2a6abf7158809cf4f3c"),
			Plaintext:  mustBlock("30c81c46a35ce411e5fbc1191a0a52ef"),
			Ciphertext: mustBlock("43b1cd7f598ece23881b00e3ed030688"),
		},
		{
			Name:       "F.1.1 ECB-AES128.Encrypt block 4",
			Key:        mustBlock("2b7e151628aed2a6abf7158809cf4f3c"),
			Plaintext:  mustBlock("f69f2445df4f9b17ad2b417be66c3710"),
			Ciphertext: mustBlock("7b0c785e27e8ad3f8223207104725dd4"),
		},
	}
}

// CheckResult records how the oracle did against one reference pair.
type CheckResult struct {
	Reference
	Got Block
	Err error
	OK  bool
}

// CheckOracle runs every reference pair through the oracle and compares
// against the published ciphertexts. The bool is true only when all pairs
// match.
func CheckOracle(o oracle.Oracle) ([]CheckResult, bool) {
	refs := References()
	results := make([]CheckResult, 0, len(refs))
	allOK := true

	for _, ref := range refs {
		res := CheckResult{Reference: ref}
		out, err := o.EncryptBlock(ref.Key[:], ref.Plaintext[:])
		if err != nil {
			res.Err = err
		} else if got, err := BlockFromBytes(out); err != nil {
			res.Err = err
		} else {
			res.Got = got
			res.OK = got == ref.Ciphertext
		}
		if !res.OK {
			allOK = false
		}
		results = append(results, res)
	}

	return results, allOK
}
