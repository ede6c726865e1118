package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestCreateAndFind(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "a@x.com", "hash")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestFindMissingReturnsNil(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	u, err := repo.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "a@x.com", "hash1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "a@x.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.True(t, CheckPassword(hash, "pw1"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
