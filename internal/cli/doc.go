// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the searchbench command tree.
//
// Running searchbench with no arguments benchmarks the default sizes and
// prints progress lines, the result tables and the closing analysis to
// stdout. Logs go to stderr.
//
// # Commands
//
//	searchbench [flags]     Run the benchmark
//	searchbench version     Print version information
//	searchbench config show Print the effective configuration as TOML
//	searchbench config path Print the config file locations
//
// # Exit Codes
//
//	0   success
//	1   general error
//	2   invalid flags or arguments
//	3   unusable configuration file
//	130 interrupted
//
// # Usage
//
//	os.Exit(cli.Execute())
package cli
