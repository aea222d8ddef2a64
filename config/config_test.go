package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/art")
	t.Setenv("JWT_SECRET", "jwt")
	t.Setenv("SESSION_SECRET", "session")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/art", cfg.DBURL)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.False(t, cfg.Storage.UsePathStyle)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/art")
	t.Setenv("JWT_SECRET", "jwt")
	t.Setenv("SESSION_SECRET", "session")
	t.Setenv("PORT", "3000")
	t.Setenv("S3_BUCKET_NAME", "pieces")
	t.Setenv("S3_USE_PATH_STYLE", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "pieces", cfg.Storage.Bucket)
	assert.True(t, cfg.Storage.UsePathStyle)
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "jwt")
	t.Setenv("SESSION_SECRET", "session")

	_, err := Parse()
	assert.Error(t, err)
}
