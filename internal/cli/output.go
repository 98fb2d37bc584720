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
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status":  "success",
			"message": message,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, message)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintSplitResult prints the outcome of a split: the group ID, the
// threshold configuration and the share files written.
func (p *Printer) PrintSplitResult(group string, threshold, total int, files []string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"group":       group,
			"threshold":   threshold,
			"total":       total,
			"share_files": files,
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Split group %s (%d-of-%d)\n", group, threshold, total)
		for _, file := range files {
			fmt.Fprintf(p.writer, "  %s\n", file)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintShareList prints a summary of share files, values redacted.
func (p *Printer) PrintShareList(files []*ShareFile) error {
	switch p.format {
	case OutputFormatJSON:
		summaries := make([]map[string]interface{}, len(files))
		for i, f := range files {
			summaries[i] = map[string]interface{}{
				"group":     f.Group,
				"index":     f.Index,
				"owner":     f.Owner,
				"threshold": f.Threshold,
				"total":     f.TotalShares,
			}
		}
		return p.printJSON(map[string]interface{}{"shares": summaries})
	case OutputFormatText:
		for _, f := range files {
			fmt.Fprintf(p.writer, "share %d/%d (group %s, owner %q)\n",
				f.Index, f.TotalShares, f.Group, f.Owner)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// printJSON encodes data as indented JSON
func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
