package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadEnvString(t *testing.T) {
	value := "default"
	readEnvString("TOURSERVER_TEST_UNSET", &value)
	assert.Equal(t, "default", value)

	t.Setenv("TOURSERVER_TEST_SET", "override")
	readEnvString("TOURSERVER_TEST_SET", &value)
	assert.Equal(t, "override", value)
}

func TestReadEnvBool(t *testing.T) {
	tests := []struct {
		raw     string
		initial bool
		want    bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"on", false, true},
		{"false", true, false},
		{"no", true, false},
		{"garbage", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("TOURSERVER_TEST_BOOL", tt.raw)
			value := tt.initial
			readEnvBool("TOURSERVER_TEST_BOOL", &value)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestListenAddress(t *testing.T) {
	t.Setenv("BIND_ADDRESS", "127.0.0.1")
	t.Setenv("PORT", "8123")
	Load()
	assert.Equal(t, "127.0.0.1:8123", ListenAddress())
}
