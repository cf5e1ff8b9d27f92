// Package config provides configuration loading, merging, and validation
// facilities for the gateway and its ad-hoc client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables, seeded from a dotenv file when one exists
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the gateway and
// [GetClientConfig] for the subject client.
package config
