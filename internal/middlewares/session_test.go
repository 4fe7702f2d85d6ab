package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/envisioned/nft-marketplace/internal/middlewares"
	"github.com/envisioned/nft-marketplace/internal/sessions"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware_ExistingSessionWithUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockStore := middlewares.NewMockSessionStore(ctrl)

	sid := uuid.NewString()
	userID := uuid.New()

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("signed-token", nil)
	mockTokener.EXPECT().GetSessionID(gomock.Any(), "signed-token").Return(sid, nil)
	mockStore.EXPECT().Get(gomock.Any(), sid).Return(userID, nil)

	var gotSID string
	var gotUserID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = middlewares.GetSessionIDFromContext(r.Context())
		gotUserID, gotOK = middlewares.GetUserIDFromContext(r.Context())
	})

	handler := middlewares.SessionMiddleware(mockTokener, mockStore, "sid", 24*time.Hour)(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/query", nil)
	handler.ServeHTTP(w, r)

	assert.Equal(t, sid, gotSID)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotUserID)
	// Valid token, so no new cookie is issued.
	assert.Empty(t, w.Result().Cookies())
}

func TestSessionMiddleware_ExistingSessionAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockStore := middlewares.NewMockSessionStore(ctrl)

	sid := uuid.NewString()

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("signed-token", nil)
	mockTokener.EXPECT().GetSessionID(gomock.Any(), "signed-token").Return(sid, nil)
	mockStore.EXPECT().Get(gomock.Any(), sid).Return(uuid.Nil, sessions.ErrSessionNotFound)

	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = middlewares.GetUserIDFromContext(r.Context())
	})

	handler := middlewares.SessionMiddleware(mockTokener, mockStore, "sid", 24*time.Hour)(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/query", nil)
	handler.ServeHTTP(w, r)

	assert.False(t, gotOK)
}

func TestSessionMiddleware_MintsSessionWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockStore := middlewares.NewMockSessionStore(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no session cookie or authorization header"))

	var mintedSID string
	mockTokener.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sid string) (string, error) {
			mintedSID = sid
			return "fresh-token", nil
		})
	mockStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(uuid.Nil, sessions.ErrSessionNotFound)

	var gotSID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = middlewares.GetSessionIDFromContext(r.Context())
	})

	handler := middlewares.SessionMiddleware(mockTokener, mockStore, "sid", 24*time.Hour)(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/query", nil)
	handler.ServeHTTP(w, r)

	assert.Equal(t, mintedSID, gotSID)
	_, err := uuid.Parse(gotSID)
	assert.NoError(t, err)

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, "sid", cookies[0].Name)
		assert.Equal(t, "fresh-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	}
}

func TestSessionMiddleware_InvalidTokenGetsNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockStore := middlewares.NewMockSessionStore(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tampered-token", nil)
	mockTokener.EXPECT().GetSessionID(gomock.Any(), "tampered-token").Return("", errors.New("signature is invalid"))
	mockTokener.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("fresh-token", nil)
	mockStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(uuid.Nil, sessions.ErrSessionNotFound)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := middlewares.SessionMiddleware(mockTokener, mockStore, "sid", 24*time.Hour)(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/query", nil)
	handler.ServeHTTP(w, r)

	assert.Len(t, w.Result().Cookies(), 1)
}

func TestSessionMiddleware_SigningFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := middlewares.NewMockTokener(ctrl)
	mockStore := middlewares.NewMockSessionStore(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no session cookie or authorization header"))
	mockTokener.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("sign error"))

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	handler := middlewares.SessionMiddleware(mockTokener, mockStore, "sid", 24*time.Hour)(next)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/query", nil)
	handler.ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireUserID(t *testing.T) {
	userID := uuid.New()

	got, err := middlewares.RequireUserID(middlewares.WithUserID(context.Background(), userID))
	assert.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = middlewares.RequireUserID(context.Background())
	assert.ErrorIs(t, err, middlewares.ErrNotAuthenticated)
}
