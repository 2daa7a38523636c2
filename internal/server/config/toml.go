package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/adventures/internal/flagx"
	"github.com/pelletier/go-toml/v2"
)

// TomlConfig mirrors Config for unmarshalling. Durations are accepted in
// Go's string form ("24h"). Only fields present in the file override the
// running config.
type TomlConfig struct {
	EndpointAddrHTTP      *string  `toml:"endpoint_addr_http"`
	DatabaseDSN           *string  `toml:"database_dsn"`
	S3AccessKey           *string  `toml:"s3_access_key"`
	S3SecretKey           *string  `toml:"s3_secret_key"`
	S3Bucket              *string  `toml:"s3_bucket"`
	S3Region              *string  `toml:"s3_region"`
	S3BaseEndpoint        *string  `toml:"s3_base_endpoint"`
	SecretKey             *string  `toml:"secret_key"`
	AdminEmails           []string `toml:"admin_emails"`
	TokenValidityDuration *string  `toml:"token_validity_duration"`
}

// parseToml overlays values from the TOML file referenced by -c/-config,
// if any. An unreadable or invalid file panics: a config file that is
// present but broken should stop the server, not be skipped silently.
func parseToml(config *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &TomlConfig{}
	if err := toml.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.S3AccessKey != nil {
		config.S3AccessKey = *c.S3AccessKey
	}
	if c.S3SecretKey != nil {
		config.S3SecretKey = *c.S3SecretKey
	}
	if c.S3Bucket != nil {
		config.S3Bucket = *c.S3Bucket
	}
	if c.S3Region != nil {
		config.S3Region = *c.S3Region
	}
	if c.S3BaseEndpoint != nil {
		config.S3BaseEndpoint = *c.S3BaseEndpoint
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AdminEmails != nil {
		config.AdminEmails = c.AdminEmails
	}
	if c.TokenValidityDuration != nil {
		d, err := time.ParseDuration(*c.TokenValidityDuration)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
}
