// SPDX-License-Identifier: MIT

// Package config resolves the settings of the strassen command.
//
// Precedence, lowest first:
//
//	defaults < YAML file < .env file < STRASSEN_* environment < flags
//
// The .env file is looked up in the working directory and up to four of its
// parents. Variables already present in the process environment win over
// the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strassen/strassen"
)

// ErrInvalidConfig wraps every validation or parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvThreshold     = "STRASSEN_THRESHOLD"
	EnvKernel        = "STRASSEN_KERNEL"
	EnvWorkers       = "STRASSEN_WORKERS"
	EnvParallelDepth = "STRASSEN_PARALLEL_DEPTH"
	EnvTrim          = "STRASSEN_TRIM"
)

// envSearchDepth is how many directories are searched for a .env file.
const envSearchDepth = 5

// Config holds the engine settings exposed to users.
type Config struct {
	Threshold     int    `yaml:"threshold"`
	Kernel        string `yaml:"kernel"`
	Workers       int    `yaml:"workers"`
	ParallelDepth int    `yaml:"parallel_depth"`
	Trim          bool   `yaml:"trim"`
}

// Default mirrors the strassen package defaults.
func Default() Config {
	return Config{
		Threshold:     strassen.DefaultThreshold,
		Kernel:        strassen.DefaultKernel.String(),
		Workers:       strassen.DefaultWorkers,
		ParallelDepth: strassen.DefaultParallelDepth,
		Trim:          strassen.DefaultTrim,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), a discovered .env file and the environment. The result
// is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	dotenv, err := readEnvFile()
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]

		return v, ok
	}
	if err = cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) loadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return nil
}

// readEnvFile returns the variables of the nearest .env file, or nil when
// none is found.
func readEnvFile() (map[string]string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err = os.Stat(envPath); err == nil {
			vars, err := godotenv.Read(envPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, envPath, err)
			}

			return vars, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvThreshold, &c.Threshold},
		{EnvWorkers, &c.Workers},
		{EnvParallelDepth, &c.ParallelDepth},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, e.key, v)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvKernel); ok {
		c.Kernel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTrim); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvTrim, v)
		}
		c.Trim = b
	}

	return nil
}

// Validate checks value ranges and the kernel name.
func (c *Config) Validate() error {
	switch {
	case c.Threshold < 1:
		return fmt.Errorf("%w: threshold %d, want >= 1", ErrInvalidConfig, c.Threshold)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d, want >= 0", ErrInvalidConfig, c.Workers)
	case c.ParallelDepth < 0:
		return fmt.Errorf("%w: parallel_depth %d, want >= 0", ErrInvalidConfig, c.ParallelDepth)
	}
	if _, err := strassen.ParseKernel(c.Kernel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts c into engine options. c is validated first, so the
// WithX constructors never panic.
func (c *Config) Options() ([]strassen.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	k, _ := strassen.ParseKernel(c.Kernel)

	return []strassen.Option{
		strassen.WithThreshold(c.Threshold),
		strassen.WithKernel(k),
		strassen.WithWorkers(c.Workers),
		strassen.WithParallelDepth(c.ParallelDepth),
		strassen.WithTrim(c.Trim),
	}, nil
}
