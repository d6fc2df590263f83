package readstore

import (
	"context"

	"payping-dispatch/internal/domain/client"
	"payping-dispatch/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const clientByIDQuery = `
SELECT id, user_id, name, contact, email
FROM clients
WHERE id = $1`

type ClientReadStore struct {
	db infra.DB
}

func NewClientReadStore(db infra.DB) *ClientReadStore {
	return &ClientReadStore{db: db}
}

func (s *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var (
		cl    client.Client
		email pgtype.Text
	)
	err := s.db.QueryRow(ctx, clientByIDQuery, id).
		Scan(&cl.ID, &cl.UserID, &cl.Name, &cl.Contact, &email)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "client not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find client by id", err)
	}
	if email.Valid {
		cl.Email = &email.String
	}
	return &cl, nil
}
