// Package preference resolves the remote API base address at startup.
//
// The address comes from, in order of precedence:
//  1. an explicit override (the --api flag), which is also remembered
//  2. the stored preference from a previous override
//  3. the configured default
//
// Stored preferences live in a small YAML file managed through Viper.
package preference
