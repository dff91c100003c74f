//go:build api

package api

import (
	"net/http"
	"testing"
	"time"

	"ultihub/internal/authz"
	"ultihub/internal/models"
	"ultihub/test/api/testserver"
	"ultihub/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateProgramme tests the POST /api/v1/programmes endpoint.
func TestCreateProgramme(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, directorToken := authHelper.CreateUserWithRole(t, "Sam Varga", "prog-director@discmail.org", authz.RoleProgrammeDirector)
	_, managerToken := authHelper.CreateUserWithRole(t, "Lee Ando", "prog-manager@discmail.org", authz.RoleProgrammeManager)
	_, coachToken := authHelper.CreateUserWithRole(t, "Coach Kim", "coach@discmail.org", authz.RoleCoach)

	t.Run("success - programme director creates a programme", func(t *testing.T) {
		req := models.CreateProgrammeRequest{Name: "Spring Juniors 2026", Season: "2026-spring"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", directorToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Spring Juniors 2026", resp.Data["name"])
		assert.Equal(t, "spring-juniors-2026", resp.Data["slug"])
	})

	t.Run("success - programme manager can create too", func(t *testing.T) {
		req := models.CreateProgrammeRequest{Name: "Summer Camp 2026", Season: "2026-summer"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", managerToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("error - duplicate programme name", func(t *testing.T) {
		req := models.CreateProgrammeRequest{Name: "Spring Juniors 2026", Season: "2026-spring"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", directorToken, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - coach cannot create programmes", func(t *testing.T) {
		req := models.CreateProgrammeRequest{Name: "Coach Clinic 2026", Season: "2026-autumn"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", coachToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - name too short", func(t *testing.T) {
		req := models.CreateProgrammeRequest{Name: "ab", Season: "2026-spring"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", directorToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestUpdateProgramme tests the PUT /api/v1/programmes/{programmeId} endpoint.
func TestUpdateProgramme(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, directorToken := authHelper.CreateUserWithRole(t, "Sam Varga", "prog-director2@discmail.org", authz.RoleProgrammeDirector)
	_, coachToken := authHelper.CreateUserWithRole(t, "Coach Kim", "coach2@discmail.org", authz.RoleCoach)

	req := models.CreateProgrammeRequest{Name: "Winter League 2026", Season: "2026-winter"}
	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", directorToken, req)
	require.Equal(t, http.StatusCreated, w.Code)
	programmeID := testserver.GetIDFromResponse(t, testutil.ParseAPIResponse(t, w).Data)

	t.Run("success - rename keeps the programme readable", func(t *testing.T) {
		newName := "Winter League Open 2026"
		updateReq := models.UpdateProgrammeRequest{Name: &newName}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/programmes/"+programmeID, directorToken, updateReq)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Winter League Open 2026", resp.Data["name"])
	})

	t.Run("error - coach cannot update", func(t *testing.T) {
		newName := "Hijacked League"
		updateReq := models.UpdateProgrammeRequest{Name: &newName}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/programmes/"+programmeID, coachToken, updateReq)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestAttendance covers recording and reading programme attendance.
func TestAttendance(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	_, directorToken := authHelper.CreateUserWithRole(t, "Sam Varga", "prog-director3@discmail.org", authz.RoleProgrammeDirector)
	_, coachToken := authHelper.CreateUserWithRole(t, "Coach Kim", "coach3@discmail.org", authz.RoleCoach)
	playerID, playerToken := authHelper.CreateUserWithRole(t, "Robin Ash", "junior@discmail.org", authz.RolePlayer)
	_, analystToken := authHelper.CreateUserWithRole(t, "Quinn Data", "analyst@discmail.org", authz.RoleDataTeam)
	_, spectatorToken := authHelper.CreateUserWithRole(t, "Fan Crowd", "fan@discmail.org", authz.RoleSpectator)

	createReq := models.CreateProgrammeRequest{Name: "Spring Juniors 2026", Season: "2026-spring"}
	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes", directorToken, createReq)
	require.Equal(t, http.StatusCreated, w.Code)
	programmeID := testserver.GetIDFromResponse(t, testutil.ParseAPIResponse(t, w).Data)

	sessionDate := time.Date(2026, 4, 2, 17, 0, 0, 0, time.UTC)

	t.Run("success - coach records attendance", func(t *testing.T) {
		req := models.RecordAttendanceRequest{
			PlayerID:    playerID,
			SessionDate: sessionDate,
			Status:      models.AttendancePresent,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes/"+programmeID+"/attendance", coachToken, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, playerID, resp.Data["playerId"])
		assert.Equal(t, "present", resp.Data["status"])
	})

	t.Run("error - one record per player per session", func(t *testing.T) {
		req := models.RecordAttendanceRequest{
			PlayerID:    playerID,
			SessionDate: sessionDate,
			Status:      models.AttendanceLate,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes/"+programmeID+"/attendance", coachToken, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - player cannot record attendance", func(t *testing.T) {
		req := models.RecordAttendanceRequest{
			PlayerID:    playerID,
			SessionDate: sessionDate.AddDate(0, 0, 7),
			Status:      models.AttendancePresent,
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes/"+programmeID+"/attendance", playerToken, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unknown status value", func(t *testing.T) {
		req := map[string]interface{}{
			"playerId":    playerID,
			"sessionDate": sessionDate.AddDate(0, 0, 7).Format(time.RFC3339),
			"status":      "maybe",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes/"+programmeID+"/attendance", coachToken, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success - player can read attendance records", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/programmes/"+programmeID+"/attendance", playerToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("error - spectator cannot read attendance", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/programmes/"+programmeID+"/attendance", spectatorToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - per-player attendance history", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/programmes/"+programmeID+"/attendance/"+playerID, analystToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 1)

		record, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, playerID, record["playerId"])
	})

	t.Run("success - data team reads the attendance summary", func(t *testing.T) {
		lateReq := models.RecordAttendanceRequest{
			PlayerID:    playerID,
			SessionDate: sessionDate.AddDate(0, 0, 14),
			Status:      models.AttendanceLate,
		}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/programmes/"+programmeID+"/attendance", coachToken, lateReq)
		require.Equal(t, http.StatusCreated, w.Code)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/programmes/"+programmeID+"/attendance-summary", analystToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		players, ok := resp.Data["players"].([]interface{})
		require.True(t, ok)
		require.Len(t, players, 1)

		summary, ok := players[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(2), summary["sessions"])
		assert.Equal(t, float64(1), summary["present"])
		assert.Equal(t, float64(1), summary["late"])
	})

	t.Run("error - coach lacks the validation permission for summaries", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/programmes/"+programmeID+"/attendance-summary", coachToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unknown programme", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/programmes/aaaaaaaaaaaaaaaaaaaaaaaa/attendance", playerToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
