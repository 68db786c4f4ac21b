package ideastore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomoos/prismq-idea/idea"
	"github.com/nomoos/prismq-idea/ideastore"
)

// newMockStore wires the store to a sqlmock driver for failure paths a
// real database will not produce on demand.
func newMockStore(t *testing.T) (*ideastore.Store, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return ideastore.New(sqlx.NewDb(mockDB, "sqlite"), nil), mock
}

func TestStore_InsertDatabaseError(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO ideas").WillReturnError(errors.New("disk I/O error"))

	rec, err := idea.FromText("T", "body")
	require.NoError(t, err)

	_, err = store.Insert(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert idea")
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InsertReturnsEngineAssignedID(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO ideas").WillReturnResult(sqlmock.NewResult(41, 1))

	rec, err := idea.FromText("T", "body")
	require.NoError(t, err)

	id, err := store.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetByIDDatabaseError(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM ideas").WillReturnError(errors.New("database is locked"))

	_, err := store.GetByID(context.Background(), 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ideastore.ErrNotFound)
	assert.Contains(t, err.Error(), "get idea 7")
}

func TestStore_ListDatabaseError(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM ideas").WillReturnError(errors.New("database is locked"))

	_, err := store.List(context.Background(), 5, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list ideas")
}

func TestStore_CountDatabaseError(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("database is locked"))

	_, err := store.Count(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count ideas")
}
