package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHasJoinedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Notch", r.URL.Query().Get("username"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch","properties":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, zap.NewNop())
	resp, err := c.HasJoined(context.Background(), "Notch", "somehash", "")
	require.NoError(t, err)
	require.Equal(t, "Notch", resp.Name)

	u, err := FormatUUID(resp.ID)
	require.NoError(t, err)
	require.Equal(t, "069a79f4-44e9-4726-a5be-fca90e38aaf5", u.String())
}

func TestHasJoinedNoSuchSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, zap.NewNop())
	_, err := c.HasJoined(context.Background(), "Notch", "somehash", "")
	require.ErrorIs(t, err, ErrNoSuchSession)
}

func TestHasJoinedUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, zap.NewNop())
	_, err := c.HasJoined(context.Background(), "Notch", "somehash", "")
	require.Error(t, err)
}
