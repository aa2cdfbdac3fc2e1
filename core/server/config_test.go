package server_test

import (
	"testing"

	"follow-checker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimitBytes(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Configured", 8, 8 << 20},
		{"Zero", 0, 32 << 20},
		{"Negative", -1, 32 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimitBytes())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":9090", server.Config{Port: "9090"}.Address())
	assert.Equal(t, ":8080", server.Config{}.Address())
}
