package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inputguard/pkg/errors"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultIDCodec, cfg.IDCodec)
	assert.Equal(t, DefaultImageExtensions, cfg.ImageExtensions)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvRequestTimeout, "2s")
	t.Setenv(EnvIDCodec, "uuid")
	t.Setenv(EnvImageExtensions, ".webp, .avif ,")
	t.Setenv(EnvMinURLLength, "4")
	t.Setenv(EnvMaxRequestSize, "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "uuid", cfg.IDCodec)
	assert.Equal(t, []string{".webp", ".avif"}, cfg.ImageExtensions)
	assert.Equal(t, 4, cfg.MinURLLength)
	assert.Equal(t, DefaultMaxRequestSize, cfg.MaxRequestSize, "unparsable values fall back to the default")
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := FromEnv()
	cfg.Port = "70000"
	cfg.IDCodec = "snowflake"
	cfg.ImageExtensions = []string{"png"}
	cfg.MinURLLength = -1
	cfg.ShutdownTimeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port must be between 1 and 65535")
	assert.Contains(t, err.Error(), "IDCodec is invalid")
	assert.Contains(t, err.Error(), "ImageExtensions entries must look like '.png'")
	assert.Contains(t, err.Error(), "MinURLLength cannot be negative")
	assert.Contains(t, err.Error(), "ShutdownTimeout must be positive")
}

func TestChecker(t *testing.T) {
	cfg := FromEnv()
	cfg.IDCodec = "uuid"
	cfg.ImageExtensions = []string{".webp"}
	cfg.MinURLLength = 5

	c, err := cfg.Checker()
	require.NoError(t, err)
	assert.Equal(t, "UUID", c.Codec().Name())

	_, err = c.ImageURL("https://example.com/a.png", "avatar")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnsupportedFormat))

	_, err = c.URL("https://a.b", "site")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTooShort))

	cfg.IDCodec = "nope"
	_, err = cfg.Checker()
	assert.Error(t, err)
}
