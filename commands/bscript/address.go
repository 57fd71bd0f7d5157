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

// addressCmd represents the address command
var addressCmd = &cobra.Command{
	Use:   "address [hex-script]",
	Short: "Print the address a standard locking script pays to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptBytes, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		addr, err := script.NewScriptFromBytes(scriptBytes).Address()
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
