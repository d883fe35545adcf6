package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supportsync-io/supportsync/internal/application/user/usecases"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

// UserHandler serves the admin-only user management surface.
type UserHandler struct {
	listUseCase   usecases.ListUsersExecutor
	createUseCase usecases.CreateUserExecutor
	updateUseCase usecases.UpdateUserExecutor
	getUseCase    usecases.GetUserExecutor
	logger        logger.Interface
}

func NewUserHandler(
	listUC usecases.ListUsersExecutor,
	createUC usecases.CreateUserExecutor,
	updateUC usecases.UpdateUserExecutor,
	getUC usecases.GetUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUseCase:   listUC,
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		logger:        logger,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (h *UserHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListUsersQuery{
		Role:     c.Query("role"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true"
		query.IsActive = &active
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// ListAdmins returns active administrator accounts, unpaginated.
func (h *UserHandler) ListAdmins(c *gin.Context) {
	active := true
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Role:     "admin",
		IsActive: &active,
		Page:     1,
		PageSize: 100,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "user created")
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", dto)
}
