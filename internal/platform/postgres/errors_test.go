package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/teodoragpaula1-maker/ADHDaily-backend/internal/store"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil passes through", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, store.ErrNotFound},
		{
			"wrapped no rows maps to not found",
			fmt.Errorf("query: %w", sql.ErrNoRows),
			store.ErrNotFound,
		},
		{
			"unique violation maps to duplicate",
			pgError(uniqueViolationCode, "users_email_key"),
			store.ErrDuplicate,
		},
		{
			"foreign key violation maps to invalid entity",
			pgError(foreignKeyViolationCode, "tasks_user_id_fkey"),
			store.ErrInvalidEntity,
		},
		{
			"check violation maps to invalid entity",
			pgError(checkViolationCode, "tasks_size_check"),
			store.ErrInvalidEntity,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tc.err)
			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}
}

func TestMapErrorPreservesUnknownErrors(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset by peer")
	assert.Equal(t, err, MapError(err))

	// Unknown pg error codes pass through unchanged too.
	pgErr := pgError("57014", "") // query_canceled
	assert.Equal(t, error(pgErr), MapError(pgErr))
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert: %w", pgError(uniqueViolationCode, "users_email_key"))
	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))

	fk := fmt.Errorf("insert: %w", pgError(foreignKeyViolationCode, "tasks_user_id_fkey"))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))

	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsForeignKeyViolation(nil))
}
