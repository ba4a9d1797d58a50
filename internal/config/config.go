// Package config provides application configuration loaded from environment variables.
package config

import "os"

// Config holds all application configuration.
type Config struct {
	Store   StoreConfig
	Output  OutputConfig
	Company CompanyConfig
}

// StoreConfig holds the invoice store location.
type StoreConfig struct {
	Path string
}

// OutputConfig holds the document export location.
type OutputConfig struct {
	Dir string
}

// CompanyConfig is the default issuing-company profile. It prefills new
// invoices; each saved invoice keeps its own snapshot of these values.
type CompanyConfig struct {
	Name    string
	Address string
	Contact string
	Tagline string
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local use.
func Load() *Config {
	return &Config{
		Store: StoreConfig{
			Path: getEnv("DB_PATH", "database/invoices.db"),
		},
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "output"),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "BuildSmart Construction Inc."),
			Address: getEnv("COMPANY_ADDRESS", "123 Innovation Blvd, Suite 500"),
			Contact: getEnv("COMPANY_CONTACT", "Toronto, ON M1X 1A1 | (416) 555-0199 | info@buildsmart.ca"),
			Tagline: getEnv("COMPANY_TAGLINE", "Experts in earning trusts"),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
