// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	selectDeviceContactsBase = `
		SELECT
			c.id,
			c.given_name,
			c.family_name,
			c.thumbnail,
			c.created_at,
			p.label,
			p.number
		FROM device_contacts c
		LEFT JOIN device_contact_phones p ON p.contact_id = c.id`

	selectDeviceContactsOrder = `
		ORDER BY c.created_at, c.id, p.position;`

	listAllDeviceContacts = selectDeviceContactsBase + selectDeviceContactsOrder

	findDeviceContactsByPhoneKey = selectDeviceContactsBase + `
		WHERE c.id IN (SELECT contact_id FROM device_contact_phones WHERE phone_key = ?)` +
		selectDeviceContactsOrder

	insertDeviceContact = `
		INSERT INTO device_contacts (id, given_name, family_name, thumbnail, created_at)
		VALUES (?, ?, ?, ?, ?);`

	updateDeviceContact = `
		UPDATE device_contacts
		SET given_name = ?, family_name = ?, thumbnail = ?
		WHERE id = ?;`

	deleteDeviceContact = `
		DELETE FROM device_contacts
		WHERE id = ?;`

	insertDeviceContactPhone = `
		INSERT INTO device_contact_phones (contact_id, position, label, number, phone_key)
		VALUES (?, ?, ?, ?, ?);`

	deleteDeviceContactPhones = `
		DELETE FROM device_contact_phones
		WHERE contact_id = ?;`

	getKeyValue = `
		SELECT value
		FROM kv_store
		WHERE key = ?;`

	setKeyValue = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
)
