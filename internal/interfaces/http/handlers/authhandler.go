package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userapp "github.com/anisurarzu/FTB-Server-Demo/internal/application/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/middleware"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

type AuthHandler struct {
	service *userapp.Service
}

func NewAuthHandler(service *userapp.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type authResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var cmd userapp.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Register(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	}, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var cmd userapp.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Login(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	u, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(u))
}
