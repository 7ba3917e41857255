// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier ones key by key):
//  1. Built-in defaults (envDefault tags)
//  2. Dotenv file (.env and .env.local, or an explicit --env-file)
//  3. Process environment variables
//  4. JSON config file (CONFIG variable or --config flag)
//  5. Command-line flags
//
// All sources are reduced to the same VITE_* variable names the envfile
// package writes, then decoded into typed structs. The main entry point is
// [Load]; [LoadSmoke] and [LoadMockServer] decode the settings of the
// corresponding commands from the same sources.
package config
