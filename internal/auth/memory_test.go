package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	id, err := s.Create(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, id, 32)

	userID, ok := s.GetUserID(ctx, id)
	assert.True(t, ok)
	assert.Equal(t, "alice", userID)

	require.NoError(t, s.Delete(ctx, id))
	_, ok = s.GetUserID(ctx, id)
	assert.False(t, ok)

	_, ok = s.GetUserID(ctx, "unknown")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	old, err := s.Create(ctx, "alice")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, ok := s.GetUserID(ctx, old)
	assert.False(t, ok, "expired at exactly ttl")

	stale, err := s.Create(ctx, "bob")
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	_, err = s.Create(ctx, "carol")
	require.NoError(t, err)
	assert.NotContains(t, s.sessions, stale, "expired sessions are pruned on create")
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewMemoryStore(time.Hour)
	id, err := s.Create(context.Background(), "alice")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireSession(s), func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFromContext(c))
	})

	for _, tc := range []struct {
		cookie string
		code   int
		body   string
	}{
		{"", http.StatusUnauthorized, ""},
		{"bogus", http.StatusUnauthorized, ""},
		{id, http.StatusOK, "alice"},
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.cookie != "" {
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tc.cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.code, w.Code)
		if tc.body != "" {
			assert.Equal(t, tc.body, w.Body.String())
		}
	}
}
