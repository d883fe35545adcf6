package usecases

import (
	"testing"

	"github.com/supportsync-io/supportsync/internal/domain/attachment"
	"github.com/supportsync-io/supportsync/internal/domain/ticket"
)

func storedTicket(t *testing.T, id, creatorID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Broken scanner", "paper jam light stays on", "", "", creatorID)
	if err != nil {
		t.Fatalf("building ticket: %v", err)
	}
	if err := tk.SetID(id); err != nil {
		t.Fatalf("setting ticket ID: %v", err)
	}
	return tk
}

func storedAttachment(t *testing.T, id, ownerID uint, ticketID, featureRequestID *uint) *attachment.Attachment {
	t.Helper()
	att, err := attachment.NewAttachment("report.pdf", "abc123.pdf", "application/pdf", 2048, ownerID, ticketID, featureRequestID)
	if err != nil {
		t.Fatalf("building attachment: %v", err)
	}
	if err := att.SetID(id); err != nil {
		t.Fatalf("setting attachment ID: %v", err)
	}
	return att
}

func uintPtr(v uint) *uint { return &v }
