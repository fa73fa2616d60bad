package client

import (
	"github.com/spf13/cobra"
)

func (a *App) newHistoryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recent searches",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List recent searches, most recent first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				session := a.newSession(cmd.Context())
				defer session.Close()

				return newPrinter(cmd.OutOrStdout(), opts.Format).printHistory(session.History())
			},
		},
		&cobra.Command{
			Use:   "rm <n>",
			Short: "Forget recent search number n",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				session := a.newSession(cmd.Context())
				defer session.Close()

				entry, err := historyEntry(session.History(), args[0])
				if err != nil {
					return err
				}
				session.RemoveEntry(entry)

				return newPrinter(cmd.OutOrStdout(), opts.Format).printHistory(session.History())
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget all recent searches",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				session := a.newSession(cmd.Context())
				defer session.Close()

				session.ClearHistory()

				return newPrinter(cmd.OutOrStdout(), opts.Format).printHistory(session.History())
			},
		},
	)

	return cmd
}
