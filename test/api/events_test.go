//go:build api

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ultihub/internal/models"
	"ultihub/test/api/testserver"
	"ultihub/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEventStream drives a score update through the event pipeline and reads
// it back off the tournament's SSE stream.
func TestEventStream(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	world := setupMatchWorld(t)

	processorCtx, stopProcessor := context.WithCancel(context.Background())
	defer stopProcessor()
	testServer.StartEventProcessor(processorCtx)
	defer testServer.StopEventProcessor()

	matchHelper := testserver.NewMatchHelper(testServer)
	matchData := matchHelper.ScheduleMatch(t, world.directorToken, world.tournamentID, world.teamAID, world.teamBID)
	matchID := testserver.GetIDFromResponse(t, matchData)

	statusReq := models.UpdateMatchStatusRequest{Status: models.MatchLive}
	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/matches/"+matchID+"/status", world.volunteerTok, statusReq)
	require.Equal(t, http.StatusOK, w.Code)

	// Open the stream with a deadline so the handler unblocks once we have
	// published.
	streamCtx, cancelStream := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStream()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tournaments/"+world.tournamentID+"/events", nil).WithContext(streamCtx)
	recorder := httptest.NewRecorder()

	streamDone := make(chan struct{})
	go func() {
		defer close(streamDone)
		testServer.Router.ServeHTTP(recorder, req)
	}()

	// Let the subscription attach before producing the event.
	time.Sleep(500 * time.Millisecond)

	scoreReq := models.UpdateScoreRequest{ScoreA: 4, ScoreB: 3}
	w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/matches/"+matchID+"/score", world.volunteerTok, scoreReq)
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case <-streamDone:
	case <-time.After(10 * time.Second):
		t.Fatal("event stream did not terminate")
	}

	assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))

	body := recorder.Body.String()
	assert.Contains(t, body, string(models.EventMatchScore))
	assert.Contains(t, body, matchID)
}

// TestEventStreamValidation checks stream parameter handling without opening
// a long-lived subscription.
func TestEventStreamValidation(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("error - malformed tournament id", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tournaments/not-an-id/events", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestEventPipelineFanout verifies events only reach subscribers of their own
// tournament.
func TestEventPipelineFanout(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	world := setupMatchWorld(t)

	processorCtx, stopProcessor := context.WithCancel(context.Background())
	defer stopProcessor()
	testServer.StartEventProcessor(processorCtx)
	defer testServer.StopEventProcessor()

	tournamentHelper := testserver.NewTournamentHelper(testServer)
	otherData := tournamentHelper.CreateTournament(t, world.directorToken, "Other Cup 2026")
	otherID := testserver.GetIDFromResponse(t, otherData)

	streamCtx, cancelStream := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancelStream()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tournaments/"+otherID+"/events", nil).WithContext(streamCtx)
	recorder := httptest.NewRecorder()

	streamDone := make(chan struct{})
	go func() {
		defer close(streamDone)
		testServer.Router.ServeHTTP(recorder, req)
	}()

	time.Sleep(500 * time.Millisecond)

	// Activity in the first tournament must not leak into the other stream.
	matchHelper := testserver.NewMatchHelper(testServer)
	matchData := matchHelper.ScheduleMatch(t, world.directorToken, world.tournamentID, world.teamAID, world.teamBID)
	matchID := testserver.GetIDFromResponse(t, matchData)

	select {
	case <-streamDone:
	case <-time.After(10 * time.Second):
		t.Fatal("event stream did not terminate")
	}

	body := recorder.Body.String()
	assert.False(t, strings.Contains(body, matchID), "foreign tournament event leaked into stream")
}
