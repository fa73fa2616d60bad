package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-phonebook/models"
	"github.com/spf13/cobra"
)

func (a *App) newDeviceCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Inspect the device address book",
	}

	var (
		given     string
		family    string
		phones    []string
		thumbnail string
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a contact directly to the device address book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parsePhoneFlags(phones)
			if err != nil {
				return err
			}

			created, err := a.runtime.Services.DeviceService.Add(cmd.Context(), models.DeviceContact{
				GivenName:    given,
				FamilyName:   family,
				PhoneNumbers: numbers,
				Thumbnail:    thumbnail,
			})
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.Format).printDeviceContacts([]models.DeviceContact{created})
		},
	}
	add.Flags().StringVar(&given, "first", "", "given name")
	add.Flags().StringVar(&family, "last", "", "family name")
	add.Flags().StringArrayVar(&phones, "phone", nil, "phone number as label:number, repeatable")
	add.Flags().StringVar(&thumbnail, "thumbnail", "", "thumbnail path or url")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List device contacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				contacts, err := a.runtime.Services.DeviceService.List(cmd.Context())
				if err != nil {
					return err
				}
				return newPrinter(cmd.OutOrStdout(), opts.Format).printDeviceContacts(contacts)
			},
		},
		add,
	)

	return cmd
}

// parsePhoneFlags turns "label:number" values into device numbers. A value
// without a label gets [models.DefaultPhoneLabel].
func parsePhoneFlags(values []string) ([]models.DevicePhoneNumber, error) {
	numbers := make([]models.DevicePhoneNumber, 0, len(values))
	for _, v := range values {
		label, number, ok := strings.Cut(v, ":")
		if !ok {
			label, number = models.DefaultPhoneLabel, v
		}
		label, number = strings.TrimSpace(label), strings.TrimSpace(number)
		if label == "" || number == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPhoneFlag, v)
		}
		numbers = append(numbers, models.DevicePhoneNumber{Label: label, Number: number})
	}
	return numbers, nil
}
