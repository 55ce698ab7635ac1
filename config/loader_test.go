package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigBytes(t *testing.T) {
	doc := []byte("server:\n  port: 8080\nreceive:\n  maxBodyBytes: 4096\n")
	require.NoError(t, LoadAppConfigBytes(doc))
	assert.Equal(t, 8080, Config.Server.Port)
	assert.Equal(t, int64(4096), Config.Receive.MaxBodyBytes)
}

func TestLoadAppConfigDefaults(t *testing.T) {
	require.NoError(t, LoadAppConfigBytes([]byte("server: {}\n")))
	assert.Equal(t, 6180, Config.Server.Port)
	assert.Equal(t, int64(1<<20), Config.Receive.MaxBodyBytes)
}

func TestLoadAppConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "negative port", doc: "server:\n  port: -1\n"},
		{name: "port too large", doc: "server:\n  port: 70000\n"},
		{name: "negative body limit", doc: "receive:\n  maxBodyBytes: -5\n"},
		{name: "malformed yaml", doc: "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, LoadAppConfigBytes([]byte(tt.doc)))
		})
	}
}
