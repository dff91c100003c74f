package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ultihub/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runGuard(t *testing.T, guard gin.HandlerFunc, role string, hasIdentity bool) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if hasIdentity {
		c.Set(UserIDKey, "507f1f77bcf86cd799439011")
		c.Set(RoleKey, role)
	}

	guard(c)
	if !c.IsAborted() {
		c.Status(http.StatusOK)
	}
	return w
}

func TestRequirePermission(t *testing.T) {
	engine := authz.NewEngine(authz.DefaultTable())

	tests := []struct {
		name       string
		role       string
		permission string
		expected   int
	}{
		{"coach holds write_team", authz.RoleCoach, authz.PermWriteTeam, http.StatusOK},
		{"director passes via admin override", authz.RoleTournamentDirector, authz.PermWrite, http.StatusOK},
		{"spectator lacks write", authz.RoleSpectator, authz.PermWrite, http.StatusForbidden},
		{"unknown role denies", "superuser", authz.PermRead, http.StatusForbidden},
		{"legacy alias resolves", "reporting_team", authz.PermValidate, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runGuard(t, RequirePermission(engine, tt.permission), tt.role, true)
			assert.Equal(t, tt.expected, w.Code)
		})
	}

	t.Run("missing identity denies", func(t *testing.T) {
		w := runGuard(t, RequirePermission(engine, authz.PermRead), "", false)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireAccessLevel(t *testing.T) {
	engine := authz.NewEngine(authz.DefaultTable())

	tests := []struct {
		name     string
		role     string
		level    authz.AccessLevel
		expected int
	}{
		{"director reaches full admin", authz.RoleTournamentDirector, authz.LevelFullAdmin, http.StatusOK},
		{"team manager reaches team access", authz.RoleTeamManager, authz.LevelTeamAccess, http.StatusOK},
		{"volunteer stops below team access", authz.RoleVolunteer, authz.LevelTeamAccess, http.StatusForbidden},
		{"sub-admin stops below full admin", authz.RoleProgrammeManager, authz.LevelFullAdmin, http.StatusForbidden},
		{"unknown role ranks below everything", "superuser", authz.LevelPublicAccess, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runGuard(t, RequireAccessLevel(engine, tt.level), tt.role, true)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	engine := authz.NewEngine(authz.DefaultTable())
	guard := RequireRoles(engine, authz.RoleTournamentDirector, authz.RoleScoringTeam)

	t.Run("listed role passes", func(t *testing.T) {
		w := runGuard(t, guard, authz.RoleScoringTeam, true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("privileged but unlisted role denies", func(t *testing.T) {
		w := runGuard(t, guard, authz.RoleProgrammeDirector, true)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPublicRead(t *testing.T) {
	engine := authz.NewEngine(authz.DefaultTable())
	guard := PublicRead(engine)

	t.Run("anonymous visitor passes", func(t *testing.T) {
		w := runGuard(t, guard, "", false)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("spectator passes", func(t *testing.T) {
		w := runGuard(t, guard, authz.RoleSpectator, true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin-holding role passes", func(t *testing.T) {
		w := runGuard(t, guard, authz.RoleTournamentDirector, true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-public authenticated role denies", func(t *testing.T) {
		w := runGuard(t, guard, authz.RolePlayer, true)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
