package handlers

import (
	"net/http"

	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/http/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accounts AccountService
	log      logging.Logger
}

func NewAuthHandler(accounts AccountService, log logging.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	res, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondCreated(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	res, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	response.RespondOK(c, res)
}
