package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supportsync-io/supportsync/internal/application/ticket/usecases"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/middleware"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase       usecases.CreateTicketExecutor
	getUseCase          usecases.GetTicketExecutor
	listUseCase         usecases.ListTicketsExecutor
	updateUseCase       usecases.UpdateTicketExecutor
	deleteUseCase       usecases.DeleteTicketExecutor
	addCommentUseCase   usecases.AddCommentExecutor
	listCommentsUseCase usecases.ListCommentsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	updateUC usecases.UpdateTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:       createUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		updateUseCase:       updateUC,
		deleteUseCase:       deleteUC,
		addCommentUseCase:   addCommentUC,
		listCommentsUseCase: listCommentsUC,
		logger:              logger,
	}
}

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateTicketRequest distinguishes an absent assignee_id from an explicit
// null: absent leaves the assignee unchanged, null clears it.
type UpdateTicketRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Priority    *string          `json:"priority"`
	Status      *string          `json:"status"`
	AssigneeID  *json.RawMessage `json:"assignee_id"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	subjectID, _ := middleware.SubjectFromContext(c)

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		CreatorID:   subjectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "ticket created")
}

func (h *TicketHandler) Get(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:    ticketID,
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *TicketHandler) List(c *gin.Context) {
	h.list(c, usecases.ScopeAll)
}

// ListMine serves /tickets/me.
func (h *TicketHandler) ListMine(c *gin.Context) {
	h.list(c, usecases.ScopeMine)
}

// ListAssigned serves /tickets/assigned.
func (h *TicketHandler) ListAssigned(c *gin.Context) {
	h.list(c, usecases.ScopeAssigned)
}

func (h *TicketHandler) list(c *gin.Context, scope usecases.ListScope) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)
	pagination := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
		Scope:       scope,
		Status:      c.Query("status"),
		Priority:    c.Query("priority"),
		Search:      c.Query("search"),
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) Update(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}

	if req.AssigneeID != nil {
		var assignee *uint
		if err := json.Unmarshal(*req.AssigneeID, &assignee); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid assignee_id")
			return
		}
		cmd.AssigneeID = &assignee
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", dto)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:    ticketID,
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.addCommentUseCase.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:    ticketID,
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
		Content:     req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "comment added")
}

func (h *TicketHandler) ListComments(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.listCommentsUseCase.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		TicketID:    ticketID,
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", comments)
}
