// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bscript

import (
	"encoding/hex"
	"fmt"

	"github.com/okayplanet/bitcoin-s-core/script"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [hex-scriptSig] [hex-scriptPubKey]",
	Short: "Evaluate an unlocking script against a locking script",
	Long: `Evaluate a hex-encoded unlocking script against a hex-encoded locking
script. No transaction context is available, so signature and lock time
checks cannot be satisfied; use it for stack, arithmetic and hash scripts.
With a single argument the script is evaluated on its own.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			scriptBytes, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}
			return report(script.NewScriptFromBytes(scriptBytes).Evaluate(nil, nil))
		}

		scriptSigBytes, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		scriptPubKeyBytes, err := hex.DecodeString(args[1])
		if err != nil {
			return err
		}
		scriptSig := script.NewScriptFromBytes(scriptSigBytes)
		scriptPubKey := script.NewScriptFromBytes(scriptPubKeyBytes)
		return report(script.Validate(scriptSig, scriptPubKey, nil))
	},
}

// report prints the script verdict. A script-semantic failure is a result,
// not a command error; undecodable bytes are.
func report(err error) error {
	switch {
	case err == nil:
		fmt.Println("success")
	case script.IsScriptFailure(err):
		fmt.Println("failure:", err)
	default:
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
