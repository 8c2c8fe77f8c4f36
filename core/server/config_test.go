package server_test

import (
	"testing"

	"menu-builder/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimitBytes(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Configured", 4, 4 * 1024 * 1024},
		{"Zero falls back to default", 0, server.DefaultBodyLimitMB * 1024 * 1024},
		{"Negative falls back to default", -1, server.DefaultBodyLimitMB * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimitBytes())
		})
	}
}
