package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supportsync-io/supportsync/internal/application/featurerequest/usecases"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/middleware"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

type FeatureRequestHandler struct {
	createUseCase       usecases.CreateFeatureRequestExecutor
	getUseCase          usecases.GetFeatureRequestExecutor
	listUseCase         usecases.ListFeatureRequestsExecutor
	updateUseCase       usecases.UpdateFeatureRequestExecutor
	deleteUseCase       usecases.DeleteFeatureRequestExecutor
	upvoteUseCase       usecases.UpvoteExecutor
	addCommentUseCase   usecases.AddCommentExecutor
	listCommentsUseCase usecases.ListCommentsExecutor
	logger              logger.Interface
}

func NewFeatureRequestHandler(
	createUC usecases.CreateFeatureRequestExecutor,
	getUC usecases.GetFeatureRequestExecutor,
	listUC usecases.ListFeatureRequestsExecutor,
	updateUC usecases.UpdateFeatureRequestExecutor,
	deleteUC usecases.DeleteFeatureRequestExecutor,
	upvoteUC usecases.UpvoteExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	logger logger.Interface,
) *FeatureRequestHandler {
	return &FeatureRequestHandler{
		createUseCase:       createUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		updateUseCase:       updateUC,
		deleteUseCase:       deleteUC,
		upvoteUseCase:       upvoteUC,
		addCommentUseCase:   addCommentUC,
		listCommentsUseCase: listCommentsUC,
		logger:              logger,
	}
}

type CreateFeatureRequestRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type UpdateFeatureRequestRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

func (h *FeatureRequestHandler) Create(c *gin.Context) {
	subjectID, _ := middleware.SubjectFromContext(c)

	var req CreateFeatureRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateFeatureRequestCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		RequesterID: subjectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "feature request created")
}

func (h *FeatureRequestHandler) Get(c *gin.Context) {
	frID, err := utils.ParseIDParam(c, "id", "feature request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetFeatureRequestQuery{FeatureRequestID: frID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

func (h *FeatureRequestHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	requesterID, err := utils.ParseOptionalUintQuery(c, "requester_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListFeatureRequestsQuery{
		Status:      c.Query("status"),
		Priority:    c.Query("priority"),
		RequesterID: requesterID,
		Search:      c.Query("search"),
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.FeatureRequests, result.Total, result.Page, result.PageSize)
}

func (h *FeatureRequestHandler) Update(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	frID, err := utils.ParseIDParam(c, "id", "feature request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFeatureRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateFeatureRequestCommand{
		FeatureRequestID: frID,
		SubjectID:        subjectID,
		SubjectRole:      subjectRole,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "feature request updated", dto)
}

func (h *FeatureRequestHandler) Delete(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	frID, err := utils.ParseIDParam(c, "id", "feature request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteFeatureRequestCommand{
		FeatureRequestID: frID,
		SubjectID:        subjectID,
		SubjectRole:      subjectRole,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Upvote records one vote per user. A repeat vote returns 409 with the count
// unchanged.
func (h *FeatureRequestHandler) Upvote(c *gin.Context) {
	subjectID, _ := middleware.SubjectFromContext(c)

	frID, err := utils.ParseIDParam(c, "id", "feature request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upvoteUseCase.Execute(c.Request.Context(), usecases.UpvoteCommand{
		FeatureRequestID: frID,
		SubjectID:        subjectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "upvote recorded", result)
}

func (h *FeatureRequestHandler) AddComment(c *gin.Context) {
	subjectID, _ := middleware.SubjectFromContext(c)

	frID, err := utils.ParseIDParam(c, "id", "feature request")
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
		FeatureRequestID: frID,
		AuthorID:         subjectID,
		Content:          req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "comment added")
}

func (h *FeatureRequestHandler) ListComments(c *gin.Context) {
	frID, err := utils.ParseIDParam(c, "id", "feature request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.listCommentsUseCase.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		FeatureRequestID: frID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", comments)
}
