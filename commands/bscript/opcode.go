// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bscript

import (
	"fmt"

	"github.com/okayplanet/bitcoin-s-core/script"
	"github.com/spf13/cobra"
)

// opcodeCmd represents the opcode command
var opcodeCmd = &cobra.Command{
	Use:   "opcode [mnemonic|hex]",
	Short: "Look up an opcode by mnemonic or hex value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opCode, ok := script.Opcodes.FromString(args[0])
		if !ok {
			opCode, ok = script.Opcodes.FromHex(args[0])
		}
		if !ok {
			return fmt.Errorf("unknown opcode %q", args[0])
		}
		fmt.Printf("%s 0x%s\n", script.NewScript().AddOpCode(opCode).Disasm(), opCode.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opcodeCmd)
}
