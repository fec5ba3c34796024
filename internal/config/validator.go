package config

import "slices"

// Placeholder values shipped in .env.example
const (
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleDBPassword = "change_this_secure_password"
)

// Warnings returns non-fatal findings about a loaded configuration, such as
// example secrets or development settings left on in production
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.StorageBackend == StoragePostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.IsProduction() {
		if c.DevMode {
			warnings = append(warnings, "DEV_MODE is enabled in production - spin rate limits are bypassed")
		}
		if slices.Contains(c.CORSOrigins, "*") {
			warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows any origin in production")
		}
	}

	return warnings
}
