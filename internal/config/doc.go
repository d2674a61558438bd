// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and validation for searchbench.
//
// Supports both TOML and JSON configuration formats, with defaults that
// reproduce the classic six-size run, environment variable overrides, and
// validation. Unknown keys are rejected in both formats.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the caller)
//   - Environment variables (SEARCHBENCH_*)
//   - ~/.searchbench/config.toml
//   - ~/.searchbench/config.json
//   - Built-in defaults
//
// # Example
//
//	sizes = [10, 100, 1000, 10000, 100000, 1000000]
//	seed = 0
//
//	[sort]
//	shared = true
//
//	[output]
//	style = "plain"
//	color = "auto"
//	progress = true
//	show_environment = true
//
//	[log]
//	level = "warn"
package config
