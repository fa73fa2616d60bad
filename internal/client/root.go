package client

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	// annotationOffline marks commands that run without the services.
	annotationOffline = "offline"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath string
	Format     string
}

func (a *App) NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "phonebook",
		Short:         "Browse and edit the shared contact directory",
		Long:          "phonebook lists, searches and edits contacts kept on the contact server and mirrors saved contacts into the local address book.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if cmd.Annotations[annotationOffline] != "" {
				return nil
			}
			return a.ensureRuntime(cmd.Context(), opts.ConfigPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the JSON config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	cmd.AddCommand(
		a.newListCommand(opts),
		a.newSearchCommand(opts),
		a.newShowCommand(opts),
		a.newCreateCommand(opts),
		a.newUpdateCommand(opts),
		a.newDeleteCommand(opts),
		a.newHistoryCommand(opts),
		a.newDeviceCommand(opts),
		a.newVersionCommand(opts),
	)

	return cmd
}
