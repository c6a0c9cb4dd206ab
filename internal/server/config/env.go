package config

import (
	"fmt"
	"time"
)

const envPrefix = "TRIPLY_"

// parseEnv overlays TRIPLY_* variables. Durations use Go syntax ("15m").
//
//	TRIPLY_GRPC_ADDR           TRIPLY_S3_ROOT_USER
//	TRIPLY_DATABASE_DSN        TRIPLY_S3_ROOT_PASSWORD
//	TRIPLY_SECRET_KEY          TRIPLY_S3_BUCKET
//	TRIPLY_ACCESS_TOKEN_TTL    TRIPLY_S3_REGION
//	TRIPLY_REFRESH_TOKEN_TTL   TRIPLY_S3_BASE_ENDPOINT
//	TRIPLY_EXPORT_LINK_TTL     TRIPLY_LOG_LEVEL
func parseEnv(config *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	get := func(name string) string { return getenv(envPrefix + name) }

	setString(&config.EndpointAddrGRPC, get("GRPC_ADDR"))
	setString(&config.DatabaseDSN, get("DATABASE_DSN"))
	setString(&config.SecretKey, get("SECRET_KEY"))
	setString(&config.S3RootUser, get("S3_ROOT_USER"))
	setString(&config.S3RootPassword, get("S3_ROOT_PASSWORD"))
	setString(&config.S3Bucket, get("S3_BUCKET"))
	setString(&config.S3Region, get("S3_REGION"))
	setString(&config.S3BaseEndpoint, get("S3_BASE_ENDPOINT"))
	setString(&config.LogLevel, get("LOG_LEVEL"))

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration},
		{"REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration},
		{"EXPORT_LINK_TTL", &config.ExportLinkValidity},
	}
	for _, d := range durations {
		v := get(d.name)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, d.name, err)
		}
		*d.dst = parsed
	}
	return nil
}
