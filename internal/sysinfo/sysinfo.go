// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sysinfo describes the machine a benchmark ran on.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Unknown is shown for any field that could not be collected.
const Unknown = "unknown"

// Info is a snapshot of the host environment.
type Info struct {
	GoVersion   string
	OS          string
	Arch        string
	CPUModel    string
	LogicalCPUs int
	MemoryTotal uint64
}

// Collect gathers host details. Fields that cannot be read are left at
// their zero value (CPUModel becomes Unknown); Collect never fails.
func Collect() Info {
	info := Info{
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		CPUModel:    Unknown,
		LogicalCPUs: runtime.NumCPU(),
	}

	if stats, err := cpu.Info(); err == nil && len(stats) > 0 {
		if model := strings.TrimSpace(stats[0].ModelName); model != "" {
			info.CPUModel = model
		}
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		info.LogicalCPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemoryTotal = vm.Total
	}

	return info
}

// String formats the snapshot on one line.
func (i Info) String() string {
	memory := Unknown
	if i.MemoryTotal > 0 {
		memory = humanize.IBytes(i.MemoryTotal)
	}
	return fmt.Sprintf("%s %s/%s | CPU: %s (%d logical) | Memory: %s",
		i.GoVersion, i.OS, i.Arch, i.CPUModel, i.LogicalCPUs, memory)
}
