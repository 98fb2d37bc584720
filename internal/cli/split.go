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
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-shamir/pkg/logging"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/spf13/cobra"
)

// splitCmd splits a secret into share files
var splitCmd = &cobra.Command{
	Use:   "split [secret-file]",
	Short: "Split a secret into N share files",
	Long: `Split reads a secret from a file (or stdin when no file is given)
and writes one YAML share file per holder into the output directory.
Any K of the N files reconstruct the secret with the combine command.

Record the secret's byte length: reconstruction requires it and it is
not stored in the share files.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		if err := cfg.LoadFile(cmd); err != nil {
			handleError(err)
			return
		}
		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		logger := logging.NewLogger(cfg.Verbose)

		owners, _ := cmd.Flags().GetStringSlice("owners")
		outDir, _ := cmd.Flags().GetString("out-dir")

		secret, err := readSecret(args)
		if err != nil {
			handleError(fmt.Errorf("failed to read secret: %w", err))
			return
		}

		params, err := cfg.SchemeParameters()
		if err != nil {
			handleError(err)
			return
		}

		scheme, err := shamir.New(params)
		if err != nil {
			handleError(err)
			return
		}

		var labels []string
		if len(owners) > 0 {
			labels = owners
		}

		printVerbose("Splitting %d-byte secret %d-of-%d", len(secret), params.Threshold(), params.TotalShares())

		shares, err := scheme.Split(secret, labels)
		if err != nil {
			handleError(err)
			return
		}

		group := uuid.New()
		logger.Debug("secret split",
			"group", group.String(),
			"threshold", params.Threshold(),
			"shares", params.TotalShares(),
			"secret_length", len(secret))

		files := make([]string, len(shares))
		for i, share := range shares {
			shareFile := NewShareFile(group, params, share)
			path := filepath.Join(outDir, fmt.Sprintf("%s-share-%d.yaml", group, share.Index))
			if err := shareFile.Write(path); err != nil {
				handleError(err)
				return
			}
			files[i] = path
		}

		if err := printer.PrintSplitResult(group.String(), params.Threshold(), params.TotalShares(), files); err != nil {
			handleError(err)
		}
	},
}

// readSecret reads the secret from the file argument or stdin.
func readSecret(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func init() {
	splitCmd.Flags().IntVarP(&globalConfig.Threshold, "threshold", "k", 2,
		"minimum number of shares required to reconstruct")
	splitCmd.Flags().IntVarP(&globalConfig.TotalShares, "shares", "n", 3,
		"total number of shares to create")
	splitCmd.Flags().StringVar(&globalConfig.Modulus, "modulus", "",
		"prime field modulus as a decimal integer (default: 521-bit Mersenne prime)")
	splitCmd.Flags().StringSlice("owners", nil,
		"owner labels, one per share (default: node_1..node_N)")
	splitCmd.Flags().String("out-dir", ".",
		"directory to write share files to")
}
