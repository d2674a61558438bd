// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestPaletteDefined(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Purple":        Purple,
		"Cyan":          Cyan,
		"Emerald":       Emerald,
		"Rose":          Rose,
		"Amber":         Amber,
		"Overlay":       Overlay,
		"OverlayDim":    OverlayDim,
		"TextPrimary":   TextPrimary,
		"TextSecondary": TextSecondary,
		"TextMuted":     TextMuted,
	}

	for name, c := range colors {
		assert.NotEmpty(t, c.Light, "%s light variant", name)
		assert.NotEmpty(t, c.Dark, "%s dark variant", name)
		assert.True(t, strings.HasPrefix(c.Light, "#"), "%s should be hex", name)
		assert.True(t, strings.HasPrefix(c.Dark, "#"), "%s should be hex", name)
	}
}

// =============================================================================
// ACCESSIBILITY TESTS
// =============================================================================

func TestStatusIndicatorsAreASCII(t *testing.T) {
	for _, indicator := range []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
	} {
		for _, r := range indicator {
			assert.Less(t, r, rune(128), "indicator %q should be ASCII", indicator)
		}
	}
}

func TestRenderHelpersIncludeIndicator(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
		{"info", RenderInfo, StatusIndicators.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("message")
			assert.Contains(t, out, tt.indicator)
			assert.Contains(t, out, "message")
		})
	}
}

func TestRenderStatus(t *testing.T) {
	assert.Contains(t, RenderStatus(true, "ok"), StatusIndicators.Success)
	assert.Contains(t, RenderStatus(false, "bad"), StatusIndicators.Error)
}
