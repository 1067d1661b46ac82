package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/session"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(config.New())
	require.NoError(t, err)
	return store
}

// requestWithCookies replays the cookies set on w onto a fresh request, the
// way a browser would on the next round trip.
func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 && c.Value != "" {
			r.AddCookie(c)
		}
	}
	return r
}

func TestStore_SaveLoad(t *testing.T) {
	store := newStore(t)

	rec := session.Record{
		AccessToken:  "access-123",
		RefreshToken: "refresh-456",
		ExpiresAt:    time.Now().Add(time.Hour).UnixMilli(),
	}

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, rec))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	require.NotContains(t, cookies[0].Value, "access-123", "token must not be readable from the cookie")

	loaded, ok := store.Load(requestWithCookies(w))
	require.True(t, ok)
	require.Equal(t, rec, loaded)
}

func TestStore_Load_MissingCookie(t *testing.T) {
	store := newStore(t)

	_, ok := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, ok)
}

func TestStore_Load_TamperedCookie(t *testing.T) {
	store := newStore(t)

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, session.Record{AccessToken: "tok"}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	c := w.Result().Cookies()[0]
	c.Value = c.Value[:len(c.Value)-2] + "xx"
	r.AddCookie(c)

	_, ok := store.Load(r)
	require.False(t, ok)
}

func TestStore_Load_GarbageCookie(t *testing.T) {
	store := newStore(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-sealed-value"})

	_, ok := store.Load(r)
	require.False(t, ok)
}

func TestStore_Load_EmptyAccessToken(t *testing.T) {
	store := newStore(t)

	// A record with no access token is equivalent to no session.
	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, session.Record{RefreshToken: "refresh-only"}))

	_, ok := store.Load(requestWithCookies(w))
	require.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := newStore(t)

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestPresent(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.False(t, session.Present(r))

	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "anything"})
	require.True(t, session.Present(r))
}

func TestFlowCookies(t *testing.T) {
	store := newStore(t)

	fs := session.FlowState{State: "state-nonce", CodeVerifier: "verifier-secret"}

	w := httptest.NewRecorder()
	store.SetFlowCookies(w, fs, 10*time.Minute)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		require.True(t, c.HttpOnly)
		require.Equal(t, 600, c.MaxAge)
		require.Equal(t, "/", c.Path)
	}

	loaded := session.ReadFlowState(requestWithCookies(w))
	require.Equal(t, fs, loaded)

	t.Run("clear expires both", func(t *testing.T) {
		w := httptest.NewRecorder()
		store.ClearFlowCookies(w)
		for _, c := range w.Result().Cookies() {
			require.Negative(t, c.MaxAge)
			require.Empty(t, c.Value)
		}
	})
}

func TestRecord_ExpiresWithin(t *testing.T) {
	t.Run("fresh token", func(t *testing.T) {
		rec := session.Record{ExpiresAt: time.Now().Add(time.Hour).UnixMilli()}
		require.False(t, rec.ExpiresWithin(time.Minute))
	})

	t.Run("expiring token", func(t *testing.T) {
		rec := session.Record{ExpiresAt: time.Now().Add(30 * time.Second).UnixMilli()}
		require.True(t, rec.ExpiresWithin(time.Minute))
	})

	t.Run("zero expiry never expires", func(t *testing.T) {
		rec := session.Record{}
		require.False(t, rec.ExpiresWithin(time.Minute))
	})
}
