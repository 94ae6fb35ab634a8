package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvString(t *testing.T) {
	t.Setenv("FILEDROP_TEST_STR", "value")
	assert.Equal(t, "value", envString("FILEDROP_TEST_STR", "def"))
	assert.Equal(t, "def", envString("FILEDROP_TEST_STR_MISSING", "def"))
}

func TestEnvInt64(t *testing.T) {
	t.Setenv("FILEDROP_TEST_INT", "1048576")
	assert.Equal(t, int64(1048576), envInt64("FILEDROP_TEST_INT", 7))

	t.Setenv("FILEDROP_TEST_INT", "not-a-number")
	assert.Equal(t, int64(7), envInt64("FILEDROP_TEST_INT", 7))

	assert.Equal(t, int64(7), envInt64("FILEDROP_TEST_INT_MISSING", 7))
}

func TestEnvModes(t *testing.T) {
	dev := &Config{AppEnv: "development"}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{AppEnv: "production"}
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
