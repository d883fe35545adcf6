package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/supportsync-io/supportsync/internal/application/attachment/usecases"
	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/middleware"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

type AttachmentHandler struct {
	uploadUseCase   usecases.UploadAttachmentExecutor
	downloadUseCase usecases.DownloadAttachmentExecutor
	listUseCase     usecases.ListAttachmentsExecutor
	deleteUseCase   usecases.DeleteAttachmentExecutor
	logger          logger.Interface
}

func NewAttachmentHandler(
	uploadUC usecases.UploadAttachmentExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	listUC usecases.ListAttachmentsExecutor,
	deleteUC usecases.DeleteAttachmentExecutor,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadUseCase:   uploadUC,
		downloadUseCase: downloadUC,
		listUseCase:     listUC,
		deleteUseCase:   deleteUC,
		logger:          logger,
	}
}

// Upload accepts a multipart form with a "file" field and optional ticket_id
// or feature_request_id form values.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	if fileHeader.Size > attachment.MaxFileSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "file size exceeds the 10MB limit")
		return
	}

	cmd := usecases.UploadAttachmentCommand{
		Filename:    fileHeader.Filename,
		FileType:    fileHeader.Header.Get("Content-Type"),
		FileSize:    fileHeader.Size,
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
	}

	if cmd.TicketID, err = parseOptionalFormUint(c, "ticket_id"); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if cmd.FeatureRequestID, err = parseOptionalFormUint(c, "feature_request_id"); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()
	cmd.Content = file

	dto, err := h.uploadUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "attachment uploaded")
}

func (h *AttachmentHandler) Download(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	attachmentID, err := utils.ParseIDParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUseCase.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		AttachmentID: attachmentID,
		SubjectID:    subjectID,
		SubjectRole:  subjectRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	contentType := result.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(
		http.StatusOK,
		result.FileSize,
		contentType,
		result.Content,
		map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", result.Filename),
		},
	)
}

// ListByTicket serves /tickets/:id/attachments.
func (h *AttachmentHandler) ListByTicket(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		SubjectID:   subjectID,
		SubjectRole: subjectRole,
		TicketID:    &ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListByFeatureRequest serves /feature-requests/:id/attachments.
func (h *AttachmentHandler) ListByFeatureRequest(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	frID, err := utils.ParseIDParam(c, "id", "feature request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		SubjectID:        subjectID,
		SubjectRole:      subjectRole,
		FeatureRequestID: &frID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	subjectID, subjectRole := middleware.SubjectFromContext(c)

	attachmentID, err := utils.ParseIDParam(c, "id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		AttachmentID: attachmentID,
		SubjectID:    subjectID,
		SubjectRole:  subjectRole,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseOptionalFormUint(c *gin.Context, key string) (*uint, error) {
	raw := c.PostForm(key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil, fmt.Errorf("invalid %s", key)
	}

	u := uint(v)
	return &u, nil
}
