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
	"encoding/base64"
	"fmt"
	"math/big"
	"os"

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"gopkg.in/yaml.v3"
)

// ShareFile is the on-disk envelope the CLI uses to hand one share to its
// holder. It preserves the index, the value and the threshold/modulus
// configuration needed to interpret the share unambiguously, plus a group
// ID tying together the files of one split. This is a tool-level format;
// the pkg/shamir primitive defines no serialization of its own.
//
// The secret's byte length is deliberately absent: it travels out-of-band.
type ShareFile struct {
	// Group identifies the split this share belongs to
	Group string `yaml:"group"`

	// Threshold is the minimum number of shares required to reconstruct (K)
	Threshold int `yaml:"threshold"`

	// TotalShares is the number of shares the split produced (N)
	TotalShares int `yaml:"total_shares"`

	// Modulus is the prime field modulus as a decimal string
	Modulus string `yaml:"modulus"`

	// Index is the share's x-coordinate (1 to N)
	Index int `yaml:"index"`

	// Value is the share's field element, base64-encoded big-endian bytes
	Value string `yaml:"value"`

	// Owner is the label of the share's holder
	Owner string `yaml:"owner,omitempty"`
}

// NewShareFile builds the envelope for a single share.
func NewShareFile(group uuid.UUID, params *shamir.SchemeParameters, share *shamir.Share) *ShareFile {
	return &ShareFile{
		Group:       group.String(),
		Threshold:   params.Threshold(),
		TotalShares: params.TotalShares(),
		Modulus:     params.Modulus().String(),
		Index:       share.Index,
		Value:       base64.StdEncoding.EncodeToString(share.Value.Bytes()),
		Owner:       share.OwnerLabel,
	}
}

// SchemeParameters rebuilds validated scheme parameters from the envelope.
func (f *ShareFile) SchemeParameters() (*shamir.SchemeParameters, error) {
	modulus, ok := new(big.Int).SetString(f.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("share file has invalid modulus %q", f.Modulus)
	}
	return shamir.NewSchemeParameters(f.Threshold, f.TotalShares, modulus)
}

// Share decodes the envelope back into a share.
func (f *ShareFile) Share() (*shamir.Share, error) {
	raw, err := base64.StdEncoding.DecodeString(f.Value)
	if err != nil {
		return nil, fmt.Errorf("share file has invalid value encoding: %w", err)
	}
	return &shamir.Share{
		Index:      f.Index,
		Value:      new(big.Int).SetBytes(raw),
		OwnerLabel: f.Owner,
	}, nil
}

// SameGroup reports whether two share files belong to the same split.
func (f *ShareFile) SameGroup(other *ShareFile) bool {
	return f.Group == other.Group &&
		f.Threshold == other.Threshold &&
		f.TotalShares == other.TotalShares &&
		f.Modulus == other.Modulus
}

// Write serializes the envelope to path, readable by the owner only.
func (f *ShareFile) Write(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode share file: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write share file: %w", err)
	}
	return nil
}

// ReadShareFile loads and parses a share file.
func ReadShareFile(path string) (*ShareFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read share file: %w", err)
	}
	shareFile := new(ShareFile)
	if err := yaml.Unmarshal(data, shareFile); err != nil {
		return nil, fmt.Errorf("failed to parse share file %s: %w", path, err)
	}
	return shareFile, nil
}
