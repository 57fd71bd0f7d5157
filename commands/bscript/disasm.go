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

// disasmCmd represents the disasm command
var disasmCmd = &cobra.Command{
	Use:   "disasm [hex-script]",
	Short: "Disassemble a hex-encoded script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptBytes, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		fmt.Println(script.NewScriptFromBytes(scriptBytes).Disasm())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
