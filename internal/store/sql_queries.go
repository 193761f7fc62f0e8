package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/eventgate/checkin/models"
)

// psql is the shared statement builder configured for PostgreSQL
// dollar-numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = "id, email, password, is_admin, created_at, updated_at"
)

// insertUserQuery builds the INSERT for a new user row. Timestamps are
// assigned by the database, and the full row is returned so the caller
// receives the canonical persisted representation.
func insertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("id", "email", "password", "is_admin", "created_at", "updated_at").
		Values(user.ID, user.Email, user.Password, user.IsAdmin, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// findUserByEmailQuery builds the lookup by (lowercased) email.
func findUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select("id", "email", "password", "is_admin", "created_at", "updated_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// markAttendedQuery builds the conditional attendance UPDATE. Only a row
// whose hash matches is touched; affected-row count distinguishes success
// from an unknown hash.
func markAttendedQuery(eventAttendeeHash string) (string, []any, error) {
	return psql.Update(models.EventAttendee{}.TableName()).
		Set("date_time_attended", sq.Expr("NOW()")).
		Set("status", "attended").
		Where(sq.Eq{"event_attendee_hash": eventAttendeeHash}).
		ToSql()
}
