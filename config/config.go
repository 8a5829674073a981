package config

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/mitchellh/go-homedir"
	"github.com/nuclio/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is looked up in the user's home directory
	DefaultFileName = ".bytecodec.yaml"

	// DefaultCodec is used when nothing else selects a codec
	DefaultCodec = "huffman"

	EnvCodec       = "BYTECODEC_CODEC"
	EnvConcurrency = "BYTECODEC_CONCURRENCY"
	EnvOverwrite   = "BYTECODEC_OVERWRITE"
)

// Config holds the defaults the command line starts from
type Config struct {
	Codec       string `yaml:"codec,omitempty"`
	Overwrite   bool   `yaml:"overwrite,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`
}

// Validate checks that the configuration can drive a conversion
func (c *Config) Validate() error {
	if c.Codec == "" {
		return errors.Wrap(codec.ErrInvalidParameter, "Codec must be set")
	}
	if c.Concurrency < 1 {
		return errors.Wrapf(codec.ErrInvalidParameter, "Concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// Reader loads configuration from YAML and the environment
type Reader struct {
	getenv func(string) string
}

// NewReader creates a configuration reader over the process environment
func NewReader() (*Reader, error) {
	return &Reader{getenv: os.Getenv}, nil
}

// Read decodes YAML from reader into config
func (r *Reader) Read(reader io.Reader, config *Config) error {
	configBytes, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "Failed to read configuration")
	}

	if err := yaml.Unmarshal(configBytes, config); err != nil {
		return errors.Wrap(err, "Failed to parse configuration")
	}

	return nil
}

// ReadFileOrDefault reads the configuration at path, falling back to the
// default path when path is empty. A missing file yields the defaults.
// Environment overrides are applied last.
func (r *Reader) ReadFileOrDefault(path string) (*Config, error) {
	config := r.GetDefaultConfiguration()

	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		configFile, err := os.Open(path)
		if err == nil {
			defer configFile.Close() // nolint: errcheck

			if err := r.Read(configFile, config); err != nil {
				return nil, errors.Wrapf(err, "Failed to read configuration file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "Failed to open configuration file %s", path)
		}
	}

	if err := r.applyEnvironment(config); err != nil {
		return nil, errors.Wrap(err, "Failed to apply environment overrides")
	}

	return config, nil
}

// GetDefaultConfiguration returns the configuration used when no file exists
func (r *Reader) GetDefaultConfiguration() *Config {
	return &Config{
		Codec:       DefaultCodec,
		Concurrency: runtime.NumCPU(),
	}
}

func (r *Reader) applyEnvironment(config *Config) error {
	if value := r.getenv(EnvCodec); value != "" {
		config.Codec = value
	}

	if value := r.getenv(EnvConcurrency); value != "" {
		concurrency, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "Invalid %s value %q", EnvConcurrency, value)
		}
		config.Concurrency = concurrency
	}

	if value := r.getenv(EnvOverwrite); value != "" {
		overwrite, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "Invalid %s value %q", EnvOverwrite, value)
		}
		config.Overwrite = overwrite
	}

	return nil
}

// DefaultPath returns ~/.bytecodec.yaml, or an empty string if the home
// directory cannot be resolved
func DefaultPath() string {
	homeDir, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, DefaultFileName)
}
