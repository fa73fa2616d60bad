package client

import (
	"github.com/spf13/cobra"
)

func (a *App) newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.writeJSON(map[string]string{
					"version": a.build.BuildVersion(),
					"date":    a.build.BuildDate(),
					"commit":  a.build.BuildCommit(),
				})
			}

			p.line("Build version: %s", orNA(a.build.BuildVersion()))
			p.line("Build date: %s", orNA(a.build.BuildDate()))
			p.line("Build commit: %s", orNA(a.build.BuildCommit()))

			return nil
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
