//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"gin-auction-service/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection refused"), want: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestWrapRepoErr_ExplicitKind(t *testing.T) {
	err := infra.WrapRepoErr("price changed", pgx.ErrNoRows, infra.KindConflict)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
}

func TestNewRepoErr(t *testing.T) {
	err := infra.NewRepoErr(infra.KindNotFound, "auction not found")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: auction not found", err.Error())
}
