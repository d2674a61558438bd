// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap loggers used by searchbench.
//
// Logs go to stderr so that stdout carries only the benchmark report.
// The default level is warn; --verbose lowers it to debug.
package logging
