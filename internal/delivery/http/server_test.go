package http

import (
	"testing"

	"campusconnect/config"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSConfig_ConfiguredOrigins(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.CORSOrigins = []string{"http://localhost:3000", "http://localhost:3500"}

	corsConfig := newCORSConfig(cfg)

	assert.Equal(t, cfg.HTTP.CORSOrigins, corsConfig.AllowOrigins)
	// Browser clients send credentialed cross-origin requests.
	assert.True(t, corsConfig.AllowCredentials)
}

func TestNewCORSConfig_DefaultOrigins(t *testing.T) {
	corsConfig := newCORSConfig(&config.Config{})

	assert.Equal(t, echomiddleware.DefaultCORSConfig.AllowOrigins, corsConfig.AllowOrigins)
	assert.True(t, corsConfig.AllowCredentials)
}
