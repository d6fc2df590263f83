package readstore

import (
	"context"
	"database/sql"
	"errors"

	"payping-dispatch/internal/domain/account"
	"payping-dispatch/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Accounts live in the profiles table, one row per authenticated user.
const accountByIDQuery = `
SELECT id, email
FROM profiles
WHERE id = $1`

type AccountReadStore struct {
	db infra.DB
}

func NewAccountReadStore(db infra.DB) *AccountReadStore {
	return &AccountReadStore{db: db}
}

func (s *AccountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var acc account.Account
	err := s.db.QueryRow(ctx, accountByIDQuery, id).Scan(&acc.ID, &acc.Email)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "account not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find account by id", err)
	}
	return &acc, nil
}

// isNoRows matches both pgx and database/sql sentinels; pgxmock surfaces the
// latter.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
