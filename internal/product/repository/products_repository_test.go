package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puramente/internal/domain"
	"puramente/internal/errors"
	"puramente/internal/testutil"
)

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	created, err := repo.Create(context.Background(), &domain.Product{
		Name:        "Silver Ring",
		Category:    "rings",
		Description: "925 sterling silver",
		ImageURL:    "/uploads/ring.jpg",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Silver Ring", found.Name)
	assert.Equal(t, "rings", found.Category)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	require.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestProductRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	created, err := repo.Create(context.Background(), &domain.Product{Name: "Chain"})
	require.NoError(t, err)

	updated, err := repo.Update(context.Background(), created.ID, &domain.Product{
		Name:     "Gold Chain",
		Category: "chains",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gold Chain", updated.Name)
	assert.Equal(t, "chains", updated.Category)
}

func TestProductRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	created, err := repo.Create(context.Background(), &domain.Product{Name: "Bangle"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.FindByID(context.Background(), created.ID)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.Delete(context.Background(), created.ID)
	_, ok = errors.IsNotFoundError(err)
	assert.True(t, ok)
}
