package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supportsync-io/supportsync/internal/application/dashboard/usecases"
	"github.com/supportsync-io/supportsync/internal/interfaces/http/middleware"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

type DashboardHandler struct {
	summaryUseCase usecases.SummaryExecutor
	logger         logger.Interface
}

func NewDashboardHandler(summaryUC usecases.SummaryExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		summaryUseCase: summaryUC,
		logger:         logger,
	}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	_, subjectRole := middleware.SubjectFromContext(c)

	result, err := h.summaryUseCase.Execute(c.Request.Context(), usecases.SummaryQuery{
		SubjectRole: subjectRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
