// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", TitleStyle.Render("searchbench"), Version)
			fmt.Fprintf(out, "%s%s\n", RenderLabel("Commit:"), ValueStyle.Render(GitCommit))
			fmt.Fprintf(out, "%s%s\n", RenderLabel("Built:"), ValueStyle.Render(BuildDate))
			fmt.Fprintf(out, "%s%s\n", RenderLabel("Go:"),
				ValueStyle.Render(fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)))
			return nil
		},
	}
}
