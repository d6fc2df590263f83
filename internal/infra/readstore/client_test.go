package readstore_test

import (
	"context"
	"testing"

	"payping-dispatch/internal/infra"
	"payping-dispatch/internal/infra/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOwnerID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testClientID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func TestClientReadStore_FindByID(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM clients").
		WithArgs(testClientID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "contact", "email"}).
			AddRow(testClientID, testOwnerID, "Acme Corp", "+15551234567",
				pgtype.Text{String: "billing@acme.test", Valid: true}))

	store := readstore.NewClientReadStore(mockDB)
	got, err := store.FindByID(context.Background(), testClientID)

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "+15551234567", got.Contact)
	require.NotNil(t, got.Email)
	assert.Equal(t, "billing@acme.test", *got.Email)
}

func TestClientReadStore_FindByID_NullEmail(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM clients").
		WithArgs(testClientID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "contact", "email"}).
			AddRow(testClientID, testOwnerID, "Acme Corp", "bob@acme.test", pgtype.Text{}))

	store := readstore.NewClientReadStore(mockDB)
	got, err := store.FindByID(context.Background(), testClientID)

	require.NoError(t, err)
	assert.Nil(t, got.Email)
}

func TestClientReadStore_FindByID_NotFound(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM clients").
		WithArgs(testClientID).
		WillReturnError(pgx.ErrNoRows)

	store := readstore.NewClientReadStore(mockDB)
	got, err := store.FindByID(context.Background(), testClientID)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Nil(t, got)
}

func TestClientReadStore_FindByID_DBFailure(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	mockDB.ExpectQuery("FROM clients").
		WithArgs(testClientID).
		WillReturnError(assert.AnError)

	store := readstore.NewClientReadStore(mockDB)
	_, err = store.FindByID(context.Background(), testClientID)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
