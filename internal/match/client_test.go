package match_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/arena-agenda/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_ListByCourt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare array", body: `[{"id":"m1","courtId":"c1","startAt":"2026-03-09T22:00:00Z"},{"id":"m2","courtId":"c1"}]`},
		{name: "data envelope", body: `{"data":[{"id":"m1","courtId":"c1"},{"id":"m2","courtId":"c1"}]}`},
		{name: "matches envelope", body: `{"matches":[{"id":"m1","courtId":"c1"},{"id":"m2","courtId":"c1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/matches", r.URL.Path)
				assert.Equal(t, "c1", r.URL.Query().Get("courtId"))
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, tt.body)
			}))
			defer server.Close()

			records, err := match.NewClient(server.URL, "").ListByCourt(context.Background(), "c1")

			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "m1", records[0].ID)
			assert.Equal(t, "m2", records[1].ID)
		})
	}
}

func TestAPIClient_ListByCourt_SkipsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "numeric status", body: `[{"id":"m1","courtId":"c1","status":"confirmed"},{"id":"m2","courtId":"c1","status":2}]`},
		{name: "text max players", body: `{"data":[{"id":"m1","courtId":"c1","status":"confirmed"},{"id":"m2","courtId":"c1","maxPlayers":"four"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(w, tt.body)
			}))
			defer server.Close()

			records, err := match.NewClient(server.URL, "").ListByCourt(context.Background(), "c1")

			require.NoError(t, err, "one bad record should not fail the whole list")
			require.Len(t, records, 1)
			assert.Equal(t, "m1", records[0].ID)
			assert.Equal(t, "confirmed", records[0].Status)
		})
	}
}

func TestAPIClient_ListByCourt_NonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	records, err := match.NewClient(server.URL, "").ListByCourt(context.Background(), "c1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Nil(t, records)
}

func TestAPIClient_SendsBearerToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprintln(w, `[]`)
	}))
	defer server.Close()

	_, err := match.NewClient(server.URL+"/", "secret").ListByCourt(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
}

func TestAPIClient_Cancel(t *testing.T) {
	var path, method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := match.NewClient(server.URL, "").Cancel(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/matches/m1/cancel", path)
}

func TestAPIClient_CancelRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	err := match.NewClient(server.URL, "").Cancel(context.Background(), "m1")
	assert.Error(t, err)
}
