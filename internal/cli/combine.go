// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"fmt"
	"os"

	"github.com/jeremyhahn/go-shamir/pkg/logging"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/spf13/cobra"
)

// combineCmd reconstructs a secret from share files
var combineCmd = &cobra.Command{
	Use:   "combine <share-file>...",
	Short: "Reconstruct a secret from K or more share files",
	Long: `Combine reads share files from one split group and reconstructs the
original secret. At least K files are required; extras are ignored.

--length is the original secret's size in bytes. It is not stored in
the share files and must match the value recorded at split time.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		logger := logging.NewLogger(cfg.Verbose)

		length, _ := cmd.Flags().GetInt("length")
		outPath, _ := cmd.Flags().GetString("out")

		if length < 0 {
			handleError(fmt.Errorf("--length must not be negative"))
			return
		}

		shareFiles, err := loadShareGroup(args)
		if err != nil {
			handleError(err)
			return
		}

		params, err := shareFiles[0].SchemeParameters()
		if err != nil {
			handleError(err)
			return
		}

		scheme, err := shamir.New(params)
		if err != nil {
			handleError(err)
			return
		}

		shares := make([]*shamir.Share, len(shareFiles))
		for i, shareFile := range shareFiles {
			share, err := shareFile.Share()
			if err != nil {
				handleError(err)
				return
			}
			shares[i] = share
		}

		printVerbose("Reconstructing %d-byte secret from %d of %d shares",
			length, len(shares), params.TotalShares())

		secret, err := scheme.Reconstruct(shares, length)
		if err != nil {
			handleError(err)
			return
		}

		logger.Debug("secret reconstructed",
			"group", shareFiles[0].Group,
			"shares_used", params.Threshold(),
			"secret_length", length)

		if outPath != "" {
			if err := os.WriteFile(outPath, secret, 0600); err != nil {
				handleError(fmt.Errorf("failed to write secret: %w", err))
				return
			}
			if err := printer.PrintSuccess(fmt.Sprintf("Secret written to %s", outPath)); err != nil {
				handleError(err)
			}
			return
		}

		// Raw secret bytes to stdout; redirect rather than paste into a
		// terminal scrollback.
		if _, err := os.Stdout.Write(secret); err != nil {
			handleError(err)
		}
	},
}

// loadShareGroup reads share files and verifies they belong to a single
// split group with identical parameters.
func loadShareGroup(paths []string) ([]*ShareFile, error) {
	shareFiles := make([]*ShareFile, len(paths))
	for i, path := range paths {
		shareFile, err := ReadShareFile(path)
		if err != nil {
			return nil, err
		}
		shareFiles[i] = shareFile
	}

	for i, shareFile := range shareFiles[1:] {
		if !shareFile.SameGroup(shareFiles[0]) {
			return nil, fmt.Errorf("share files %s and %s belong to different splits",
				paths[0], paths[i+1])
		}
	}
	return shareFiles, nil
}

func init() {
	combineCmd.Flags().IntP("length", "l", 0,
		"original secret length in bytes (required, communicated out-of-band)")
	combineCmd.Flags().String("out", "",
		"write the secret to this file instead of stdout")
	_ = combineCmd.MarkFlagRequired("length")
}
