package handlers

import (
	"net/http"

	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/http/middleware"
	"github.com/dmitrijs2005/skillboard/internal/server/http/response"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles ProfileService
	log      logging.Logger
}

func NewProfileHandler(profiles ProfileService, log logging.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log.With("handler", "profile")}
}

// List serves GET /api/profiles?skill=.
func (h *ProfileHandler) List(c *gin.Context) {
	ps, err := h.profiles.List(c.Request.Context(), c.Query("skill"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, ps)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, p)
}

// GetMine answers {"profile": null} when the caller has no profile yet.
func (h *ProfileHandler) GetMine(c *gin.Context) {
	p, err := h.profiles.GetByOwner(c.Request.Context(), middleware.Token(c))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": p})
}

func (h *ProfileHandler) UpsertMine(c *gin.Context) {
	var fields models.ProfileUpsertFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	p, err := h.profiles.Upsert(c.Request.Context(), middleware.Token(c), fields)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, p)
}

func (h *ProfileHandler) AvatarUpload(c *gin.Context) {
	up, err := h.profiles.AvatarUploadURL(c.Request.Context(), middleware.Token(c))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, up)
}
