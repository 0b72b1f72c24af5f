package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/practice-sem-2/chat-service/internal/auth"
	"github.com/practice-sem-2/chat-service/internal/models"
	"github.com/practice-sem-2/chat-service/internal/ratelimit"
	storage "github.com/practice-sem-2/chat-service/internal/storages"
	"github.com/practice-sem-2/chat-service/internal/storages/mocks"
	"github.com/practice-sem-2/chat-service/internal/usecases"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	ira    = &models.User{UserID: 1, Login: "ira", DisplayName: "Ira"}
	family = &models.Chat{ChatID: 10, Title: "Family", IsGroup: true}
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

type fakeLimiter struct {
	allowed bool
	err     error
}

func (l fakeLimiter) Allow(context.Context, string) (*ratelimit.Result, error) {
	if l.err != nil {
		return nil, l.err
	}
	return &ratelimit.Result{Allowed: l.allowed, Limit: 5, ResetIn: time.Minute}, nil
}

type testServer struct {
	srv      *Server
	tokens   *auth.TokenIssuer
	users    *mocks.MockUsersStore
	chats    *mocks.MockChatsStore
	members  *mocks.MockMembersStore
	messages *mocks.MockMessagesStore
	updates  *mocks.MockUpdatesStore
}

type serverOption func(*serverDeps)

type serverDeps struct {
	pinger  Pinger
	limiter ratelimit.Limiter
}

func withPinger(p Pinger) serverOption {
	return func(d *serverDeps) { d.pinger = p }
}

func withLimiter(l ratelimit.Limiter) serverOption {
	return func(d *serverDeps) { d.limiter = l }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)
	ts := &testServer{
		tokens:   auth.NewTokenIssuer("test-secret", time.Hour),
		users:    mocks.NewMockUsersStore(ctrl),
		chats:    mocks.NewMockChatsStore(ctrl),
		members:  mocks.NewMockMembersStore(ctrl),
		messages: mocks.NewMockMessagesStore(ctrl),
		updates:  mocks.NewMockUpdatesStore(ctrl),
	}

	registry.EXPECT().GetUsersStore().Return(ts.users).AnyTimes()
	registry.EXPECT().GetChatsStore().Return(ts.chats).AnyTimes()
	registry.EXPECT().GetMembersStore().Return(ts.members).AnyTimes()
	registry.EXPECT().GetMessagesStore().Return(ts.messages).AnyTimes()
	registry.EXPECT().GetUpdatesStore().Return(ts.updates).AnyTimes()
	registry.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn storage.AtomicFunc) error {
			return fn(registry)
		}).
		AnyTimes()

	deps := &serverDeps{pinger: fakePinger{}}
	for _, opt := range opts {
		opt(deps)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	validate := usecases.NewValidator()
	ts.srv = New(
		usecases.NewUsersUsecase(registry, validate, ts.tokens),
		usecases.NewChatsUsecase(registry, validate),
		NewHealthChecker(deps.pinger, time.Minute, logger),
		deps.limiter,
		logger,
	)
	return ts
}

// as authenticates the following requests as user.
func (ts *testServer) as(t *testing.T, user *models.User) string {
	token, _, err := ts.tokens.Issue(user.UserID)
	require.NoError(t, err)
	ts.users.EXPECT().GetUserByID(gomock.Any(), user.UserID).Return(user, nil).AnyTimes()
	return token
}

func (ts *testServer) do(method, target, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) doJSON(method, target, token, body string) *httptest.ResponseRecorder {
	return ts.do(method, target, token, strings.NewReader(body), "application/json")
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	t.Run("should report ok when database answers", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/health", "", nil, "")
		req.Equal(http.StatusOK, rec.Code)
		req.NotEmpty(rec.Header().Get(RequestIDHeader))
	})

	t.Run("should report unavailable when database is down", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t, withPinger(fakePinger{err: errors.New("connection refused")}))

		rec := ts.do(http.MethodGet, "/health", "", nil, "")
		req.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

func TestAuthentication(t *testing.T) {
	t.Run("should reject requests without token", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/chats/10/messages", "", nil, "")
		req.Equal(http.StatusUnauthorized, rec.Code)
		req.Equal("UNAUTHORIZED", decode[ErrorResponse](t, rec).Code)
	})

	t.Run("should reject malformed token", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/users", "garbage", nil, "")
		req.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("should keep request id from the client", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		r := httptest.NewRequest(http.MethodGet, "/users", nil)
		r.Header.Set(RequestIDHeader, "abc")
		rec := httptest.NewRecorder()
		ts.srv.Handler().ServeHTTP(rec, r)
		req.Equal("abc", rec.Header().Get(RequestIDHeader))
	})
}

func TestLogin(t *testing.T) {
	t.Run("should accept form credentials", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		hash, err := auth.HashPassword("qwerty")
		req.NoError(err)
		stored := *ira
		stored.PasswordHash = hash
		ts.users.EXPECT().GetUserByLogin(gomock.Any(), "ira").Return(&stored, nil)

		form := url.Values{"username": {"ira"}, "password": {"qwerty"}}
		rec := ts.do(http.MethodPost, "/login", "", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
		req.Equal(http.StatusOK, rec.Code, rec.Body.String())

		body := decode[TokenResponse](t, rec)
		req.Equal("bearer", body.TokenType)
		req.Equal(ira.UserID, body.UserID)

		claims, err := ts.tokens.Parse(body.AccessToken)
		req.NoError(err)
		req.Equal(ira.UserID, claims.UserID)
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		ts.users.EXPECT().GetUserByLogin(gomock.Any(), "ira").Return(nil, nil)

		rec := ts.doJSON(http.MethodPost, "/login", "", `{"login":"ira","password":"nope"}`)
		req.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("should stop login attempts over the limit", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t, withLimiter(fakeLimiter{allowed: false}))

		ts.users.EXPECT().GetUserByLogin(gomock.Any(), gomock.Any()).Times(0)

		rec := ts.doJSON(http.MethodPost, "/login", "", `{"login":"ira","password":"qwerty"}`)
		req.Equal(http.StatusTooManyRequests, rec.Code)
		req.Equal("5", rec.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("should let logins through when limiter is unavailable", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t, withLimiter(fakeLimiter{err: errors.New("redis: connection refused")}))

		ts.users.EXPECT().GetUserByLogin(gomock.Any(), "ira").Return(nil, nil)

		rec := ts.doJSON(http.MethodPost, "/login", "", `{"login":"ira","password":"qwerty"}`)
		req.Equal(http.StatusUnauthorized, rec.Code, rec.Body.String())
		req.Empty(rec.Header().Get("X-RateLimit-Limit"))
	})
}

func TestRegister(t *testing.T) {
	t.Run("should create user", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		ts.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(ira, nil)

		rec := ts.doJSON(http.MethodPost, "/register", "", `{"login":"ira","password":"qwerty","display_name":"Ira"}`)
		req.Equal(http.StatusCreated, rec.Code)
		req.Equal(*ira, decode[models.User](t, rec))
		req.NotContains(rec.Body.String(), "password")
	})

	t.Run("should report taken login as conflict", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)

		ts.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrLoginTaken)

		rec := ts.doJSON(http.MethodPost, "/register", "", `{"login":"ira","password":"qwerty"}`)
		req.Equal(http.StatusConflict, rec.Code)
		req.Equal("CONFLICT", decode[ErrorResponse](t, rec).Code)
	})
}

func TestGetMessages(t *testing.T) {
	t.Run("should use default page and return chronological order", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(family, nil)
		ts.members.EXPECT().IsMember(gomock.Any(), family.ChatID, ira.UserID).Return(true, nil)
		ts.messages.EXPECT().
			PageMessages(gomock.Any(), models.PageSelect{ChatID: family.ChatID, Limit: 50, Offset: 0}).
			Return([]models.Message{
				{MessageID: 2, ChatID: family.ChatID, UserID: ira.UserID, Text: "second", CreatedAt: base.Add(time.Minute)},
				{MessageID: 1, ChatID: family.ChatID, UserID: ira.UserID, Text: "first", CreatedAt: base},
			}, nil)
		ts.users.EXPECT().GetDisplayNames(gomock.Any(), gomock.Any()).Return(map[int64]string{ira.UserID: "Ira"}, nil)

		rec := ts.do(http.MethodGet, "/chats/10/messages", token, nil, "")
		req.Equal(http.StatusOK, rec.Code, rec.Body.String())

		views := decode[[]models.MessageView](t, rec)
		req.Len(views, 2)
		req.Equal("first", views[0].Text)
		req.Equal("second", views[1].Text)
		req.Equal("Ira", views[0].AuthorDisplayName)
	})

	t.Run("should pass explicit paging", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(family, nil)
		ts.members.EXPECT().IsMember(gomock.Any(), family.ChatID, ira.UserID).Return(true, nil)
		ts.messages.EXPECT().
			PageMessages(gomock.Any(), models.PageSelect{ChatID: family.ChatID, Limit: 2, Offset: 4}).
			Return(nil, nil)
		ts.users.EXPECT().GetDisplayNames(gomock.Any(), gomock.Any()).Return(map[int64]string{}, nil)

		rec := ts.do(http.MethodGet, "/chats/10/messages?limit=2&offset=4", token, nil, "")
		req.Equal(http.StatusOK, rec.Code)
		req.JSONEq(`[]`, rec.Body.String())
	})

	t.Run("should forbid non members", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(family, nil)
		ts.members.EXPECT().IsMember(gomock.Any(), family.ChatID, ira.UserID).Return(false, nil)

		rec := ts.do(http.MethodGet, "/chats/10/messages", token, nil, "")
		req.Equal(http.StatusForbidden, rec.Code)
		req.Equal("FORBIDDEN", decode[ErrorResponse](t, rec).Code)
	})

	t.Run("should report missing chat", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		ts.chats.EXPECT().GetChat(gomock.Any(), int64(404)).Return(nil, nil)

		rec := ts.do(http.MethodGet, "/chats/404/messages", token, nil, "")
		req.Equal(http.StatusNotFound, rec.Code)
	})

	t.Run("should reject bad paging", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		for _, target := range []string{
			"/chats/10/messages?limit=0",
			"/chats/10/messages?limit=abc",
			"/chats/10/messages?offset=-1",
			"/chats/abc/messages",
		} {
			rec := ts.do(http.MethodGet, target, token, nil, "")
			req.Equal(http.StatusBadRequest, rec.Code, target)
		}
	})
}

func TestPostMessage(t *testing.T) {
	t.Run("should create message", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		msg := &models.Message{MessageID: 5, ChatID: family.ChatID, UserID: ira.UserID, Text: "hi", CreatedAt: time.Now().UTC()}
		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(family, nil)
		ts.members.EXPECT().IsMember(gomock.Any(), family.ChatID, ira.UserID).Return(true, nil)
		ts.messages.EXPECT().AppendMessage(gomock.Any(), family.ChatID, ira.UserID, "hi").Return(msg, nil)
		ts.members.EXPECT().GetMemberIDs(gomock.Any(), family.ChatID).Return([]int64{ira.UserID}, nil)
		ts.updates.EXPECT().MessageSent(gomock.Any()).Return(nil)

		rec := ts.doJSON(http.MethodPost, "/chats/10/messages", token, `{"text":"hi"}`)
		req.Equal(http.StatusCreated, rec.Code, rec.Body.String())

		view := decode[models.MessageView](t, rec)
		req.Equal(int64(5), view.MessageID)
		req.Equal("Ira", view.AuthorDisplayName)
	})

	t.Run("should reject empty text", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		rec := ts.doJSON(http.MethodPost, "/chats/10/messages", token, `{"text":""}`)
		req.Equal(http.StatusBadRequest, rec.Code)
		req.Equal("INVALID_ARGUMENT", decode[ErrorResponse](t, rec).Code)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(nil, errors.New("pq: secret details"))

		rec := ts.doJSON(http.MethodPost, "/chats/10/messages", token, `{"text":"hi"}`)
		req.Equal(http.StatusInternalServerError, rec.Code)
		req.NotContains(rec.Body.String(), "secret")
	})
}

func TestMembers(t *testing.T) {
	t.Run("should add member", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)
		mama := &models.User{UserID: 2, Login: "mama", DisplayName: "mama"}

		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(family, nil)
		ts.members.EXPECT().IsMember(gomock.Any(), family.ChatID, ira.UserID).Return(true, nil)
		ts.users.EXPECT().GetUserByID(gomock.Any(), mama.UserID).Return(mama, nil)
		ts.members.EXPECT().
			AddMember(gomock.Any(), family.ChatID, mama.UserID).
			Return(&models.Membership{ChatID: family.ChatID, UserID: mama.UserID}, false, nil)

		rec := ts.doJSON(http.MethodPost, "/chats/10/members", token, `{"user_id":2}`)
		req.Equal(http.StatusOK, rec.Code, rec.Body.String())
		req.JSONEq(`{"chat_id":10,"user_id":2}`, rec.Body.String())
	})

	t.Run("should remove member", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		ts.chats.EXPECT().GetChat(gomock.Any(), family.ChatID).Return(family, nil)
		ts.members.EXPECT().IsMember(gomock.Any(), family.ChatID, ira.UserID).Return(true, nil)
		ts.members.EXPECT().RemoveMember(gomock.Any(), family.ChatID, ira.UserID).Return(nil)
		ts.members.EXPECT().GetMemberIDs(gomock.Any(), family.ChatID).Return(nil, nil)
		ts.updates.EXPECT().MemberRemoved(gomock.Any()).Return(nil)

		rec := ts.do(http.MethodDelete, "/chats/10/members/1", token, nil, "")
		req.Equal(http.StatusNoContent, rec.Code)
	})

	t.Run("should list chats of the caller only", func(t *testing.T) {
		req := require.New(t)
		ts := newTestServer(t)
		token := ts.as(t, ira)

		ts.chats.EXPECT().GetUserChats(gomock.Any(), ira.UserID).Return(nil, nil)

		rec := ts.do(http.MethodGet, "/users/1/chats", token, nil, "")
		req.Equal(http.StatusOK, rec.Code)
		req.JSONEq(`[]`, rec.Body.String())

		rec = ts.do(http.MethodGet, "/users/2/chats", token, nil, "")
		req.Equal(http.StatusForbidden, rec.Code)
	})
}
