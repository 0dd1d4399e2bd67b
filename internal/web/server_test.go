package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hward/gamenight/internal/store"
)

func seededServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	require.NoError(t, st.UpsertGames(ctx, []store.RefRow{{ID: 1, Name: "Chess"}}))
	require.NoError(t, st.UpsertPlayers(ctx, []store.RefRow{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Bob"}}))
	require.NoError(t, st.ImportEvents(ctx, []store.EventRows{{
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Game: "Chess", GameID: 1,
		Results: []store.ResultRow{
			{PlayerID: 1, Winner: true},
			{PlayerID: 2, Winner: false},
		},
	}}))

	srv, err := NewServer(st)
	require.NoError(t, err)
	return srv
}

func TestIndex_RendersStandings(t *testing.T) {
	srv := seededServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Leaderboard")
	assert.Contains(t, body, "Ann")
	// Bob never won, so he is not listed.
	assert.NotContains(t, body, "Bob")
}

func TestIndex_EmptyDatabase(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv, err := NewServer(st)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No results imported yet.")
}

func TestIndex_UnknownPath(t *testing.T) {
	srv := seededServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
