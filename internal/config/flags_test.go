package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		input    string
		wantHost string
		wantPort int
	}{
		{input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			require.NoError(t, addr.Set(tt.input))
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	inputs := []string{
		"no-port",
		"localhost:not-a-number",
		"localhost:0",
		"localhost:-1",
		"not-an-ip:8080",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var addr NetAddress
			require.Error(t, addr.Set(input))
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
