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
	"math/big"
	"os"

	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds global CLI configuration
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// Threshold is the minimum number of shares required to reconstruct (K)
	Threshold int

	// TotalShares is the number of shares a split produces (N)
	TotalShares int

	// Modulus is the prime field modulus as a decimal string.
	// Empty selects the default 521-bit Mersenne prime.
	Modulus string

	// OutputFormat controls output formatting (text, json)
	OutputFormat string

	// Verbose enables verbose logging
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Threshold:    2,
		TotalShares:  3,
		OutputFormat: "text",
		Verbose:      false,
	}
}

// LoadFile merges settings from the config file, when one exists.
// Values for flags the user set explicitly on the command line are
// left untouched.
func (c *Config) LoadFile(cmd *cobra.Command) error {
	v := viper.New()
	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".shamir")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SHAMIR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if c.ConfigFile == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if v.IsSet("threshold") && !cmd.Flags().Changed("threshold") {
		c.Threshold = v.GetInt("threshold")
	}
	if v.IsSet("shares") && !cmd.Flags().Changed("shares") {
		c.TotalShares = v.GetInt("shares")
	}
	if v.IsSet("modulus") && !cmd.Flags().Changed("modulus") {
		c.Modulus = v.GetString("modulus")
	}
	return nil
}

// SchemeParameters builds validated scheme parameters from the
// configuration.
func (c *Config) SchemeParameters() (*shamir.SchemeParameters, error) {
	modulus := shamir.DefaultModulus()
	if c.Modulus != "" {
		parsed, ok := new(big.Int).SetString(c.Modulus, 10)
		if !ok {
			return nil, fmt.Errorf("invalid modulus: %q is not a decimal integer", c.Modulus)
		}
		modulus = parsed
	}
	return shamir.NewSchemeParameters(c.Threshold, c.TotalShares, modulus)
}
