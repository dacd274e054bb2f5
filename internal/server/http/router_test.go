package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/auth"
	"github.com/dmitrijs2005/skillboard/internal/server/config"
	"github.com/dmitrijs2005/skillboard/internal/server/fixtures"
	"github.com/dmitrijs2005/skillboard/internal/server/http/handlers"
	"github.com/dmitrijs2005/skillboard/internal/server/http/middleware"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/skillboard/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ar := accounts.NewInMemoryRepository()
	pr := profiles.NewInMemoryRepository()
	require.NoError(t, fixtures.Seed(context.Background(), ar, pr, logging.NewNop()))

	codec := auth.PlainCodec{}
	log := logging.NewNop()
	return NewRouter(RouterConfig{
		AuthHandler:    handlers.NewAuthHandler(services.NewAccountService(ar, codec), log),
		ProfileHandler: handlers.NewProfileHandler(services.NewProfileService(pr, codec, &config.Config{}), log),
		HealthHandler:  handlers.NewHealthHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(codec),
		Logger:         log,
	})
}

func do(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}](t, rec).Error.Code
}

func TestHealthcheck(t *testing.T) {
	rec := do(t, newTestRouter(t), stdhttp.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, stdhttp.MethodPost, "/api/auth/login", "", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	login := decode[models.AuthResult](t, rec)
	assert.Equal(t, models.PublicAccount{ID: "1", Email: "john@example.com", Name: "John Doe"}, login.Account)
	assert.NotContains(t, rec.Body.String(), "password123")

	id, err := auth.PlainCodec{}.Decode(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", id.ID)

	rec = do(t, r, stdhttp.MethodPost, "/api/auth/login", "", `{"email":"john@example.com","password":"nope"}`)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", errorCode(t, rec))

	rec = do(t, r, stdhttp.MethodPost, "/api/auth/register", "", `{"email":"john@example.com","password":"x","name":"X"}`)
	assert.Equal(t, stdhttp.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_account", errorCode(t, rec))

	rec = do(t, r, stdhttp.MethodPost, "/api/auth/register", "", `{"email":"ann@example.com","password":"pw"}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = do(t, r, stdhttp.MethodPost, "/api/auth/register", "", `{"email":"ann@example.com","password":"pw","name":"Ann"}`)
	assert.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.Equal(t, "3", decode[models.AuthResult](t, rec).Account.ID)
}

func TestProfileReads(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, stdhttp.MethodGet, "/api/profiles?skill=react", "", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Profile](t, rec), 2)

	rec = do(t, r, stdhttp.MethodGet, "/api/profiles?skill=Rust", "", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, r, stdhttp.MethodGet, "/api/profiles/2", "", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	p := decode[models.Profile](t, rec)
	assert.Equal(t, "Jane Smith", p.Name)
	assert.Equal(t, "2", p.OwnerID)
	assert.Contains(t, rec.Body.String(), `"userId":"2"`)
	assert.Contains(t, rec.Body.String(), `"avatarUrl":"https://randomuser.me/api/portraits/women/1.jpg"`)

	rec = do(t, r, stdhttp.MethodGet, "/api/profiles/999", "", "")
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, "profile_not_found", errorCode(t, rec))
}

func TestMyProfileFlow(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, stdhttp.MethodGet, "/api/profile/me", "", "")
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)

	rec = do(t, r, stdhttp.MethodPost, "/api/auth/register", "", `{"email":"ann@example.com","password":"pw","name":"Ann"}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	token := decode[models.AuthResult](t, rec).Token

	rec = do(t, r, stdhttp.MethodGet, "/api/profile/me", token, "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"profile":null}`, rec.Body.String())

	rec = do(t, r, stdhttp.MethodPut, "/api/profile/me", token, `{"title":"A","skills":[{"name":"Go","level":5}]}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	first := decode[models.Profile](t, rec)
	require.Len(t, first.Skills, 1)
	assert.NotEmpty(t, first.Skills[0].ID)

	rec = do(t, r, stdhttp.MethodPut, "/api/profile/me", token, `{"title":"B"}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	second := decode[models.Profile](t, rec)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "B", second.Title)
	assert.Equal(t, first.Skills, second.Skills)

	rec = do(t, r, stdhttp.MethodGet, "/api/profile/me", token, "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	mine := decode[struct {
		Profile *models.Profile `json:"profile"`
	}](t, rec)
	require.NotNil(t, mine.Profile)
	assert.Equal(t, second.ID, mine.Profile.ID)

	rec = do(t, r, stdhttp.MethodPut, "/api/profile/me", token, `{"skills":[{"name":"Go","level":9}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = do(t, r, stdhttp.MethodPut, "/api/profile/me", token, `{"skills":[{"level":3}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	// wider than int32: rejected instead of wrapping
	rec = do(t, r, stdhttp.MethodPut, "/api/profile/me", token, `{"skills":[{"name":"Go","level":4294967301}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = do(t, r, stdhttp.MethodPut, "/api/profile/me", token, `not json`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = do(t, r, stdhttp.MethodPost, "/api/profile/me/avatar", token, "")
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "storage_not_configured", errorCode(t, rec))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer("127.0.0.1:0", logging.NewNop(), RouterConfig{HealthHandler: handlers.NewHealthHandler()})

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	require.Eventually(t, func() bool {
		resp, err := stdhttp.Get("http://" + lis.Addr().String() + "/healthcheck")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == stdhttp.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	s := NewServer("127.0.0.1:99999", logging.NewNop(), RouterConfig{})
	assert.Error(t, s.Run(context.Background()))
}
