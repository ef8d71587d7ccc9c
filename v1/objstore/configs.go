package objstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines the top-level configuration structure for the object
// storage client. It contains the connection settings handed to the
// transport and client-level behavior toggles.
type Config struct {
	// Connection contains endpoint and addressing settings
	Connection ConnectionConfig `yaml:"connection"`

	// Logger is an optional logger from the v1/logger package.
	// If provided, it will be used for background and lifecycle logging.
	Logger Logger `yaml:"-"`
}

// ConnectionConfig contains endpoint and addressing settings.
type ConnectionConfig struct {
	// Endpoint is the storage server host[:port]
	// Example: "s3.eu-central-1.amazonaws.com" or "minio.internal:9000"
	Endpoint string `yaml:"endpoint"`

	// Region is the default region used when a bucket's region is unknown
	// Default: "us-east-1"
	Region string `yaml:"region"`

	// Bucket is the default bucket for single-bucket applications
	// Leave empty when operating on many buckets
	Bucket string `yaml:"bucket"`

	// UseSSL determines whether the transport should use HTTPS
	// Default: true
	UseSSL bool `yaml:"useSSL"`

	// VirtualHostStyle selects bucket-in-host addressing over path style
	// Default: false (path style)
	VirtualHostStyle bool `yaml:"virtualHostStyle"`
}

// DefaultConfig returns a configuration with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Connection: ConnectionConfig{
			Region: "us-east-1",
			UseSSL: true,
		},
	}
}

// LoadConfig reads a YAML configuration file and applies defaults for
// unset fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("objstore: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("objstore: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for required fields.
func (c Config) Validate() error {
	if c.Connection.Endpoint == "" {
		return fmt.Errorf("%w: endpoint cannot be empty", ErrInvalidConfig)
	}
	if c.Connection.Region == "" {
		return fmt.Errorf("%w: region cannot be empty", ErrInvalidConfig)
	}
	return nil
}

// Logger provides optional logging for the client. The v1/logger
// LoggerClient satisfies this interface; any other implementation with the
// same signatures works too.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
