// SPDX-License-Identifier: MIT

package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the commands.
const (
	FlagConfig        = "config"
	FlagThreshold     = "threshold"
	FlagKernel        = "kernel"
	FlagWorkers       = "workers"
	FlagParallelDepth = "parallel-depth"
	FlagNoTrim        = "no-trim"
)

// RegisterFlags declares the engine flags on fs with Default() values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "YAML configuration file")
	fs.Int(FlagThreshold, d.Threshold, "dimension at or below which the direct kernel is used")
	fs.String(FlagKernel, d.Kernel, "base-case kernel: naive, ikj or blocked")
	fs.Int(FlagWorkers, d.Workers, "concurrent sub-products (0 = GOMAXPROCS)")
	fs.Int(FlagParallelDepth, d.ParallelDepth, "recursion levels that fan out when workers > 1")
	fs.Bool(FlagNoTrim, false, "print the full padded product")
}

// FromFlags loads the file named by --config (if any) plus .env and the
// environment, then overrides with every flag the user set explicitly.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyFlags(fs); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// ApplyFlags copies the flags changed on the command line into c.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	if fs.Changed(FlagThreshold) {
		if c.Threshold, err = fs.GetInt(FlagThreshold); err != nil {
			return err
		}
	}
	if fs.Changed(FlagKernel) {
		if c.Kernel, err = fs.GetString(FlagKernel); err != nil {
			return err
		}
	}
	if fs.Changed(FlagWorkers) {
		if c.Workers, err = fs.GetInt(FlagWorkers); err != nil {
			return err
		}
	}
	if fs.Changed(FlagParallelDepth) {
		if c.ParallelDepth, err = fs.GetInt(FlagParallelDepth); err != nil {
			return err
		}
	}
	if fs.Changed(FlagNoTrim) {
		noTrim, err := fs.GetBool(FlagNoTrim)
		if err != nil {
			return err
		}
		c.Trim = !noTrim
	}

	return nil
}
