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

	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/spf13/cobra"
)

// verifyCmd validates share files without reconstructing
var verifyCmd = &cobra.Command{
	Use:   "verify <share-file>...",
	Short: "Validate share files without reconstructing the secret",
	Long: `Verify checks that share files belong to a single split group, that
each share's index and value are within range, and that no two files
carry the same index. It cannot detect a share whose value was altered
within the field; only reconstruction against a known secret can.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		printer := NewPrinter(cfg.OutputFormat, os.Stdout)

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

		seen := make(map[int]string, len(shareFiles))
		for i, shareFile := range shareFiles {
			share, err := shareFile.Share()
			if err != nil {
				handleError(err)
				return
			}
			if err := scheme.VerifyShare(share); err != nil {
				handleError(fmt.Errorf("%s: %w", args[i], err))
				return
			}
			if previous, ok := seen[share.Index]; ok {
				handleError(fmt.Errorf("%s and %s carry the same share index %d",
					previous, args[i], share.Index))
				return
			}
			seen[share.Index] = args[i]
		}

		if err := printer.PrintShareList(shareFiles); err != nil {
			handleError(err)
			return
		}
		if err := printer.PrintSuccess(fmt.Sprintf("%d share(s) valid", len(shareFiles))); err != nil {
			handleError(err)
		}
	},
}
