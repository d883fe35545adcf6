package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/application/user/usecases"
)

type stubListUsersExecutor struct {
	captured usecases.ListUsersQuery
	result   *usecases.ListUsersResult
}

func (s *stubListUsersExecutor) Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	s.captured = query
	return s.result, nil
}

func TestUserHandler_ListAdminsFiltersActiveAdmins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	listUC := &stubListUsersExecutor{
		result: &usecases.ListUsersResult{
			Users: []usecases.UserDTO{
				{ID: 1, Username: "root", Role: "admin", IsActive: true},
			},
			Total:    1,
			Page:     1,
			PageSize: 100,
		},
	}
	handler := NewUserHandler(listUC, nil, nil, nil, noopLogger{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req, err := http.NewRequest(http.MethodGet, "/api/users/admins", nil)
	require.NoError(t, err)
	c.Request = req

	handler.ListAdmins(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", listUC.captured.Role)
	require.NotNil(t, listUC.captured.IsActive, "deactivated admins must be excluded")
	assert.True(t, *listUC.captured.IsActive)
	assert.Contains(t, rec.Body.String(), `"root"`)
}
