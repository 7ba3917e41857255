// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the appkit command-line application: environment
// file generation, configuration inspection, the API smoke test and the
// mock API server.
//
// Every command resolves configuration through [config.Load], so the same
// layering of dotenv files, process environment, JSON file and flags applies
// everywhere.
package app
