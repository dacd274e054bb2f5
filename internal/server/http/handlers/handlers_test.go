package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProfiles struct {
	err error
}

func (f fakeProfiles) List(context.Context, string) ([]*models.Profile, error) { return nil, f.err }
func (f fakeProfiles) GetByID(context.Context, string) (*models.Profile, error) {
	return nil, f.err
}
func (f fakeProfiles) GetByOwner(context.Context, string) (*models.Profile, error) {
	return nil, f.err
}
func (f fakeProfiles) Upsert(context.Context, string, models.ProfileUpsertFields) (*models.Profile, error) {
	return nil, f.err
}
func (f fakeProfiles) AvatarUploadURL(context.Context, string) (*models.AvatarUpload, error) {
	return nil, f.err
}

func TestRespondServiceError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
		code string
	}{
		{common.ErrDuplicateAccount, http.StatusConflict, "duplicate_account"},
		{common.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{common.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{common.ErrTokenExpired, http.StatusUnauthorized, "invalid_token"},
		{common.ErrProfileNotFound, http.StatusNotFound, "profile_not_found"},
		{common.ErrStorageNotConfigured, http.StatusServiceUnavailable, "storage_not_configured"},
		{errors.New("db error: broken pipe"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondServiceError(c, logging.NewNop(), tt.err)

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestList_InternalErrorHidesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProfileHandler(fakeProfiles{err: errors.New("db error: password=hunter2")}, logging.NewNop())

	r := gin.New()
	r.GET("/api/profiles", h.List)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, strings.Contains(rec.Body.String(), "hunter2"))
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	NewHealthHandler().HealthCheck(c)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
