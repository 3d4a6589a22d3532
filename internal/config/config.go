// SPDX-License-Identifier: MIT

// Package config resolves numlab settings from NUMLAB_* environment variables,
// optionally seeded from a .env file found in the working directory or one of
// its parents.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/matrixio"
)

// Environment variable names.
const (
	EnvVariant           = "NUMLAB_VARIANT"
	EnvParallel          = "NUMLAB_PARALLEL"
	EnvParallelThreshold = "NUMLAB_PARALLEL_THRESHOLD"
	EnvMaxWorkers        = "NUMLAB_MAX_WORKERS"
	EnvLogLevel          = "NUMLAB_LOG_LEVEL"
	EnvLogFormat         = "NUMLAB_LOG_FORMAT"
	EnvCacheSize         = "NUMLAB_CACHE_SIZE"
)

// envSearchDepth bounds the upward .env lookup.
const envSearchDepth = 5

// ErrInvalid is returned when a variable is set to an unparsable value.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved command configuration.
type Config struct {
	Variant           matrix.Variant
	Parallel          bool
	ParallelThreshold int
	MaxWorkers        int
	LogLevel          string
	LogFormat         string
	CacheSize         int

	// EnvFile is the .env file that was applied, empty if none.
	EnvFile string
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Variant:           matrix.Strassen,
		Parallel:          matrix.DefaultParallel,
		ParallelThreshold: matrix.DefaultParallelThreshold,
		MaxWorkers:        matrix.DefaultMaxWorkers(),
		LogLevel:          "info",
		LogFormat:         "text",
		CacheSize:         matrixio.DefaultCacheSize,
	}
}

// Load applies the nearest .env file (existing variables win) and then reads
// the environment over Default.
func Load() (Config, error) {
	path, err := loadEnvFile()
	if err != nil {
		return Config{}, err
	}
	cfg, err := FromLookup(os.LookupEnv)
	if err != nil {
		return Config{}, err
	}
	cfg.EnvFile = path

	return cfg, nil
}

// FromLookup resolves a Config through lookup, which has the shape of os.LookupEnv.
//
// Errors: ErrInvalid naming the variable.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if v, ok := nonEmpty(lookup, EnvVariant); ok {
		if cfg.Variant, err = matrix.ParseVariant(v); err != nil {
			return Config{}, invalid(EnvVariant, v, err)
		}
	}
	if v, ok := nonEmpty(lookup, EnvParallel); ok {
		if cfg.Parallel, err = strconv.ParseBool(v); err != nil {
			return Config{}, invalid(EnvParallel, v, err)
		}
	}
	if cfg.ParallelThreshold, err = positiveInt(lookup, EnvParallelThreshold, cfg.ParallelThreshold); err != nil {
		return Config{}, err
	}
	if cfg.MaxWorkers, err = positiveInt(lookup, EnvMaxWorkers, cfg.MaxWorkers); err != nil {
		return Config{}, err
	}
	if v, ok := nonEmpty(lookup, EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := nonEmpty(lookup, EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := nonEmpty(lookup, EnvCacheSize); ok {
		n, perr := strconv.Atoi(v)
		if perr != nil || n < 0 {
			return Config{}, invalid(EnvCacheSize, v, perr)
		}
		cfg.CacheSize = n
	}

	return cfg, nil
}

// MatrixOptions translates the parallel settings into matrix options.
func (c Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{
		matrix.WithParallelThreshold(c.ParallelThreshold),
		matrix.WithMaxWorkers(c.MaxWorkers),
	}
	if c.Parallel {
		opts = append(opts, matrix.WithParallel())
	}
	return opts
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func positiveInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := nonEmpty(lookup, key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, invalid(key, v, err)
	}
	return n, nil
}

func invalid(key, value string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, value, cause)
	}
	return fmt.Errorf("%w: %s=%q", ErrInvalid, key, value)
}

// loadEnvFile walks up from the working directory and applies the first .env found.
func loadEnvFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err = godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("config: %s: %w", envPath, err)
			}
			return envPath, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
