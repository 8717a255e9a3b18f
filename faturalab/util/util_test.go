package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled_False(t *testing.T) {
	t.Setenv("FATURALAB_DEBUG", "")
	assert.False(t, DebugEnabled())
}

func TestDebugEnabled_True(t *testing.T) {
	t.Setenv("FATURALAB_DEBUG", "true")
	assert.True(t, DebugEnabled())
}

func TestDebugEnabled_Garbage(t *testing.T) {
	t.Setenv("FATURALAB_DEBUG", "yes please")
	assert.False(t, DebugEnabled())
}

func TestHTTPTraceEnabled(t *testing.T) {
	t.Setenv("FATURALAB_HTTP_TRACE", "1")
	assert.True(t, HTTPTraceEnabled())
}

func TestGetEnvOrFailed(t *testing.T) {
	t.Setenv("FATURALAB_ENV_DIR", "/tmp/environments")
	assert.Equal(t, "/tmp/environments", GetEnvOrFailed("FATURALAB_ENV_DIR"))
}
