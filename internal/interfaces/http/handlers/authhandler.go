package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authusecases "github.com/supportsync-io/supportsync/internal/application/auth/usecases"
	userusecases "github.com/supportsync-io/supportsync/internal/application/user/usecases"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/middleware"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase authusecases.RegisterExecutor
	loginUseCase    authusecases.LoginExecutor
	getUserUseCase  userusecases.GetUserExecutor
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC authusecases.RegisterExecutor,
	loginUC authusecases.LoginExecutor,
	getUserUC userusecases.GetUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		getUserUseCase:  getUserUC,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), authusecases.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.UserID,
		"username":   result.Username,
		"email":      result.Email,
		"role":       result.Role,
		"created_at": result.CreatedAt,
	}, "registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), authusecases.LoginCommand{
		Email:     req.Email,
		Password:  req.Password,
		ClientKey: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
		"expires_in":   result.ExpiresIn,
		"user": gin.H{
			"id":       result.UserID,
			"username": result.Username,
			"role":     result.Role,
		},
	})
}

// Logout acknowledges the logout. Access tokens are stateless and simply
// expire; the client discards its copy, nothing is revoked server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "successfully logged out", nil)
}

// Me returns the authenticated subject's profile. Registered under both
// /auth/me and /auth/profile.
func (h *AuthHandler) Me(c *gin.Context) {
	subjectID, _ := middleware.SubjectFromContext(c)

	dto, err := h.getUserUseCase.Execute(c.Request.Context(), userusecases.GetUserQuery{UserID: subjectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
