package router

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/college-cms/app/handlers"
	"github.com/opencampus/college-cms/app/middleware"
	"github.com/opencampus/college-cms/config"
)

// newRouteTable builds the full router with inert handlers and returns the
// set of "METHOD path" pairs Fiber registered. Handlers are never invoked.
func newRouteTable(t *testing.T) map[string]bool {
	t.Helper()

	cfg, err := config.LoadProductionConfig()
	require.NoError(t, err)

	h := Handlers{
		Auth:         handlers.NewAdminAuthHandler(nil),
		News:         handlers.NewNewsHandler(nil, nil),
		Gallery:      handlers.NewGalleryHandler(nil, nil),
		Faculty:      handlers.NewFacultyHandler(nil, nil),
		Admissions:   handlers.NewAdmissionHandler(nil, nil),
		Examinations: handlers.NewExaminationHandler(nil, nil),
		Activities:   handlers.NewActivityHandler(nil, nil),
		Videos:       handlers.NewVideoHandler(nil, nil),
		RollNumbers:  handlers.NewRollNumberHandler(nil, nil),
		Contacts:     handlers.NewContactHandler(nil, nil),
		Media:        handlers.NewMediaHandler(nil),
	}

	r := NewFiberRouter(cfg, h, middleware.NewAuthMiddleware(nil), func() error { return nil })
	r.SetupRoutes()

	routes := make(map[string]bool)
	for _, group := range r.GetApp().Stack() {
		for _, route := range group {
			path := route.Path
			if path != "/" {
				path = strings.TrimRight(path, "/")
			}
			routes[fmt.Sprintf("%s %s", route.Method, path)] = true
		}
	}
	return routes
}

func TestAuthRouteMethods(t *testing.T) {
	routes := newRouteTable(t)

	// The admin SPA client drives these exact method/path pairs.
	assert.True(t, routes["GET /api/admin/auth/captcha"])
	assert.True(t, routes["POST /api/admin/auth/login"])
	assert.True(t, routes["POST /api/admin/auth/refresh"])
	assert.True(t, routes["GET /api/admin/auth/profile"])
	assert.True(t, routes["PUT /api/admin/auth/change-password"])

	assert.False(t, routes["POST /api/admin/auth/change-password"])
	assert.False(t, routes["POST /api/admin/auth/captcha"])
}

func TestResourceRouteSurface(t *testing.T) {
	routes := newRouteTable(t)

	for _, prefix := range []string{
		"/api/news", "/api/gallery", "/api/faculty", "/api/admissions",
		"/api/examinations", "/api/activities", "/api/videos", "/api/roll-numbers",
	} {
		assert.True(t, routes["GET "+prefix], prefix)
		assert.True(t, routes["GET "+prefix+"/:id"], prefix)
		assert.True(t, routes["GET /api/admin"+prefix[4:]], prefix)
		assert.True(t, routes["POST /api/admin"+prefix[4:]], prefix)
		assert.True(t, routes["PUT /api/admin"+prefix[4:]+"/:id"], prefix)
		assert.True(t, routes["DELETE /api/admin"+prefix[4:]+"/:id"], prefix)
		assert.True(t, routes["POST /api/admin"+prefix[4:]+"/bulk-delete"], prefix)
		assert.True(t, routes["PATCH /api/admin"+prefix[4:]+"/:id/toggle-published"], prefix)
	}

	assert.True(t, routes["POST /api/contact"])
	assert.True(t, routes["GET /api/health"])
	assert.True(t, routes["POST /api/admin/roll-numbers/import"])
	assert.True(t, routes["GET /api/admin/roll-numbers/export"])
	assert.True(t, routes["POST /api/admin/upload"])
	assert.True(t, routes["PATCH /api/admin/contacts/:id/status"])

	// Contacts never surface publicly and carry no featured flag
	assert.False(t, routes["GET /api/contacts"])
	assert.False(t, routes["PATCH /api/admin/contacts/:id/toggle-featured"])
}
