// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the color palette and shared text styles for
searchbench output.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System

  - Purple - titles and section headers
  - Cyan - table headers and the algorithm column
  - Emerald - passing trials and the fastest value in a row
  - Amber - warnings and sort times
  - Rose - failed trials and errors

# Accessibility

Status messages always carry an ASCII indicator alongside the color so
they stay readable without color or for colorblind users:

	[OK] success   [X] error   [!] warning   [i] info

# Usage

	fmt.Println(styles.Title.Render("Execution Time Summary"))
	fmt.Println(styles.RenderWarning("1 trial returned an unexpected index"))
*/
package styles
