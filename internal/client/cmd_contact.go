package client

import (
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/spf13/cobra"
)

type contactFlags struct {
	firstName    string
	lastName     string
	phone        string
	image        string
	clearImage   bool
	saveToDevice bool
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last", "", "last name")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number, any formatting")
	cmd.Flags().StringVar(&f.image, "image", "", "profile image: local file or http(s) url")
	cmd.Flags().BoolVar(&f.saveToDevice, "save-to-device", false, "also save the contact to the device address book")
}

func (a *App) newCreateCommand(opts *RootOptions) *cobra.Command {
	flags := &contactFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runtime.Services.ContactService.Create(cmd.Context(), models.SaveRequest{
				Payload: models.ContactPayload{
					FirstName:   flags.firstName,
					LastName:    flags.lastName,
					PhoneNumber: flags.phone,
				},
				ProfileImage: flags.image,
				SaveToDevice: flags.saveToDevice,
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.Format).printMutation("Created", res)
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newUpdateCommand(opts *RootOptions) *cobra.Command {
	flags := &contactFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a contact; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			contacts := a.runtime.Services.ContactService

			current, err := contacts.Get(ctx, args[0])
			if err != nil {
				return err
			}

			payload := current.Payload()
			changed := cmd.Flags().Changed
			if changed("first") {
				payload.FirstName = flags.firstName
			}
			if changed("last") {
				payload.LastName = flags.lastName
			}
			if changed("phone") {
				payload.PhoneNumber = flags.phone
			}
			if flags.clearImage {
				payload.ProfileImageURL = ""
			}

			res, err := contacts.Update(ctx, models.SaveRequest{
				ID:           current.ID,
				Payload:      payload,
				ProfileImage: flags.image,
				SaveToDevice: flags.saveToDevice,
				Previous:     &current,
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.Format).printMutation("Updated", res)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.clearImage, "clear-image", false, "remove the profile image")
	cmd.MarkFlagsMutuallyExclusive("image", "clear-image")

	return cmd
}

func (a *App) newDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact and its device copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			contacts := a.runtime.Services.ContactService

			current, err := contacts.Get(ctx, args[0])
			if err != nil {
				return err
			}

			res, err := contacts.Delete(ctx, current)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.Format).printMutation("Deleted", res)
		},
	}
}
