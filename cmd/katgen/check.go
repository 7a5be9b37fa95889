package main

import (
	"errors"

	"github.com/spf13/cobra"

	"katgen/internal/oracle"
	"katgen/internal/services/vector"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the encryption oracle against published NIST pairs",
	Long: `Check runs the FIPS-197 C.1 and SP 800-38A F.1.1 reference pairs
through the configured oracle and compares the results against the
published ciphertexts.`,
	Example: `  katgen check
  katgen check --oracle builtin`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	name := resolveOracleName(cmd)
	orc, err := oracle.Select(name, resolveOpenSSLBin(cmd))
	if err != nil {
		return err
	}
	lg.Debugw("checking oracle", "oracle", name)
	results, ok := vector.CheckOracle(orc)
	for _, res := range results {
		switch {
		case res.Err != nil:
			printError("FAIL %s: %v", res.Name, res.Err)
		case !res.OK:
			printError("FAIL %s: got %s, want %s", res.Name, res.Got.Hex(), res.Ciphertext.Hex())
		default:
			printInfo("ok   %s", res.Name)
		}
	}
	if !ok {
		return errors.New("oracle failed reference checks")
	}
	printSuccess("All %d reference pairs verified", len(results))
	return nil
}
