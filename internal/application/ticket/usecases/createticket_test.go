package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
	apperrors "github.com/supportsync-io/supportsync/internal/shared/errors"
)

func TestCreateTicketUseCase_DefaultsApply(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(42)
		},
	}
	uc := NewCreateTicketUseCase(repo, &mockLogger{})

	dto, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "VPN drops every hour",
		Description: "started after the gateway upgrade",
		CreatorID:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), dto.ID)
	assert.Equal(t, "low", dto.Priority)
	assert.Equal(t, "new", dto.Status)
	assert.Equal(t, uint(7), dto.CreatorID)
	assert.Nil(t, dto.AssigneeID)
}

func TestCreateTicketUseCase_ExplicitEnums(t *testing.T) {
	repo := &mockTicketRepository{}
	uc := NewCreateTicketUseCase(repo, &mockLogger{})

	dto, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer offline",
		Description: "third floor",
		Priority:    "high",
		Status:      "in_progress",
		CreatorID:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, "high", dto.Priority)
	assert.Equal(t, "in_progress", dto.Status)
}

func TestCreateTicketUseCase_ValidationFailures(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{
			name: "empty title",
			cmd:  CreateTicketCommand{Title: "", Description: "x", CreatorID: 1},
		},
		{
			name: "unknown priority",
			cmd:  CreateTicketCommand{Title: "t", Description: "x", Priority: "urgent", CreatorID: 1},
		},
		{
			name: "unknown status",
			cmd:  CreateTicketCommand{Title: "t", Description: "x", Status: "open", CreatorID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
