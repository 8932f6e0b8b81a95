package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-api-starter/models"
	sq "github.com/Masterminds/squirrel"
)

var usersTable = models.User{}.TableName()

// userColumns is the column order every user query selects and scans.
var userColumns = []string{"user_id", "login", "name", "password_hash", "created_at", "updated_at"}

var returningUser = "RETURNING " + strings.Join(userColumns, ", ")

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("login", "name", "password_hash", "created_at", "updated_at").
		Values(user.Login, user.Name, user.PasswordHash, now, now).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListUsersQuery(b sq.StatementBuilderType, req models.ListUsersRequest) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		OrderBy("user_id").
		Limit(req.Limit).
		Offset(req.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery sets only the non-nil fields of update; updated_at is
// always refreshed.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, update models.UserUpdate, now time.Time) (string, []any, error) {
	qb := b.Update(usersTable)

	if update.Name != nil {
		qb = qb.Set("name", *update.Name)
	}
	if update.PasswordHash != nil {
		qb = qb.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := qb.Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Login, &user.Name, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}
