package repository

import (
	"context"
	"fmt"
	"testing"

	"art-collector/database"
	"art-collector/internal/domain/media"
	"art-collector/internal/domain/users"
	"art-collector/internal/domain/works"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, repo *Users, username string) *users.User {
	t.Helper()
	u := &users.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedPiece(t *testing.T, repo *Pieces, userID, title string, archival bool) *works.ArtPiece {
	t.Helper()
	p := &works.ArtPiece{
		UserID:   userID,
		Title:    title,
		Artist:   "artist",
		Medium:   "oil",
		Size:     works.Size{Unit: "cm"},
		Archival: archival,
		Images: media.Images{
			{URL: "https://cdn.example.com/" + title, Filename: title},
		},
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}
