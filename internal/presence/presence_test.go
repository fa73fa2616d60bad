package presence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-phonebook/models"
)

func deviceContact(numbers ...string) models.DeviceContact {
	dc := models.DeviceContact{ID: "d"}
	for _, n := range numbers {
		dc.PhoneNumbers = append(dc.PhoneNumbers, models.DevicePhoneNumber{Label: models.DefaultPhoneLabel, Number: n})
	}
	return dc
}

func TestComputePresence_CountryCodePrefix(t *testing.T) {
	remote := []models.Contact{{ID: "1", FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "15551234567"}}
	device := []models.DeviceContact{deviceContact("5551234567")}

	presence := ComputePresence(remote, device)

	assert.True(t, presence["5551234567"])
	assert.True(t, IsPresent(presence, remote[0]))
}

func TestComputePresence(t *testing.T) {
	remote := []models.Contact{
		{ID: "1", PhoneNumber: "+1 (555) 123-4567"},
		{ID: "2", PhoneNumber: "0044 20 7946 0958"},
		{ID: "3", PhoneNumber: "5550000000"},
		{ID: "4", PhoneNumber: ""},
		{ID: "5", PhoneNumber: "000"},
	}
	device := []models.DeviceContact{
		deviceContact("555-123-4567"),
		deviceContact("not a number", "020 7946 0958"),
		deviceContact(""),
	}

	presence := ComputePresence(remote, device)

	assert.Equal(t, map[string]bool{
		"5551234567": true,
		"2079460958": true,
		"5550000000": false,
	}, presence)
}

func TestComputePresence_EmptyDevice(t *testing.T) {
	remote := []models.Contact{{ID: "1", PhoneNumber: "5551234567"}}

	presence := ComputePresence(remote, nil)

	assert.False(t, IsPresent(presence, remote[0]))
}

func TestIndexDevice_AllNumbers(t *testing.T) {
	index := IndexDevice([]models.DeviceContact{
		deviceContact("111 222 3333", "+7 (999) 000-11-22"),
		deviceContact("0"),
	})

	assert.Len(t, index, 2)
	assert.Contains(t, index, "1112223333")
	assert.Contains(t, index, "9990001122")
}

func TestTag(t *testing.T) {
	remote := []models.Contact{
		{ID: "1", PhoneNumber: "15551234567"},
		{ID: "2", PhoneNumber: "5550000000", InDeviceContacts: true},
	}
	presence := ComputePresence(remote, []models.DeviceContact{deviceContact("5551234567")})

	tagged := Tag(remote, presence)

	require.Len(t, tagged, 2)
	assert.True(t, tagged[0].InDeviceContacts)
	assert.False(t, tagged[1].InDeviceContacts)
	assert.True(t, remote[1].InDeviceContacts, "input is not modified")

	for _, c := range Tag(remote, nil) {
		assert.False(t, c.InDeviceContacts)
	}
}
