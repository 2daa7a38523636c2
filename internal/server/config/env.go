package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays values from environment variables. Only variables that
// are set override the running config.
//
// Recognized variables:
//
//	RUN_ADDRESS       HTTP bind address
//	DATABASE_DSN      PostgreSQL DSN
//	S3_ACCESS_KEY     object storage access key
//	S3_SECRET_KEY     object storage secret key
//	S3_BUCKET         image bucket name
//	S3_REGION         object storage region
//	S3_BASE_ENDPOINT  object storage endpoint URL
//	SECRET_KEY        admin token HMAC secret
//	ADMIN_EMAILS      comma-separated allow-list
//	TOKEN_VALIDITY    admin token lifetime, Go duration form
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("S3_ACCESS_KEY"); ok {
		config.S3AccessKey = v
	}
	if v, ok := os.LookupEnv("S3_SECRET_KEY"); ok {
		config.S3SecretKey = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ADMIN_EMAILS"); ok {
		config.AdminEmails = splitEmails(v)
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}

func splitEmails(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
