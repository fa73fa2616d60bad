package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
)

const contactsTable = "contacts"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var contactColumns = []string{
	"id",
	"first_name",
	"last_name",
	"phone_number",
	"profile_image_url",
	"created_at",
}

func returningContact() string {
	return "RETURNING " + strings.Join(contactColumns, ", ")
}

func buildInsertContactQuery(ctx context.Context, contact models.Contact) (string, []any, error) {
	return toSQL(ctx, "buildInsertContactQuery", psql.
		Insert(contactsTable).
		Columns("id", "first_name", "last_name", "phone_number", "profile_image_url").
		Values(contact.ID, contact.FirstName, contact.LastName, contact.PhoneNumber, contact.ProfileImageURL).
		Suffix(returningContact()))
}

func buildSelectContactQuery(ctx context.Context, id string) (string, []any, error) {
	return toSQL(ctx, "buildSelectContactQuery", psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": id}))
}

func buildListContactsQuery(ctx context.Context) (string, []any, error) {
	return toSQL(ctx, "buildListContactsQuery", psql.
		Select(contactColumns...).
		From(contactsTable).
		OrderBy("created_at", "id"))
}

func buildUpdateContactQuery(ctx context.Context, contact models.Contact) (string, []any, error) {
	return toSQL(ctx, "buildUpdateContactQuery", psql.
		Update(contactsTable).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("phone_number", contact.PhoneNumber).
		Set("profile_image_url", contact.ProfileImageURL).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": contact.ID}).
		Suffix(returningContact()))
}

func buildDeleteContactQuery(ctx context.Context, id string) (string, []any, error) {
	return toSQL(ctx, "buildDeleteContactQuery", psql.
		Delete(contactsTable).
		Where(sq.Eq{"id": id}))
}

func toSQL(ctx context.Context, fn string, b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to build query")
		return "", nil, err
	}
	return query, args, nil
}
