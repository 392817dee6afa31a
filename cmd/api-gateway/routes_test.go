package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Route registration never invokes the handlers, so a zero-value
// handlerSet is enough to inspect the mounted table.
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, nil, handlerSet{})

	routes := make(map[string]bool)
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestRegisterRoutesMountsBlackoutsUnderSessionBlackouts(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["GET /session-blackouts"])
	assert.True(t, routes["POST /session-blackouts"])
	assert.True(t, routes["DELETE /session-blackouts/:id"])
	assert.True(t, routes["GET /session-blackouts/check"])

	assert.False(t, routes["GET /blackouts"])
	assert.False(t, routes["POST /blackouts"])
	assert.False(t, routes["DELETE /blackouts/:id"])
}

func TestRegisterRoutesMountsSchedulingSurface(t *testing.T) {
	routes := registeredRoutes(t)

	for _, want := range []string{
		"POST /auth/login",
		"GET /auth/me",
		"GET /sessions",
		"POST /sessions",
		"PUT /sessions/:id",
		"DELETE /sessions/:id",
		"POST /sessions/generate",
		"GET /sessions/export",
		"GET /sessions/:id/participants",
		"POST /sessions/:id/participants",
		"DELETE /sessions/:id/participants/:participantId",
		"GET /attendance",
		"POST /attendance",
	} {
		assert.True(t, routes[want], want)
	}
}
