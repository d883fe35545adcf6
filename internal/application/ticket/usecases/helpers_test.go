package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supportsync-io/supportsync/internal/domain/ticket"
)

func storedTicket(t *testing.T, id, creatorID uint) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket("VPN down", "no connectivity", "", "", creatorID)
	require.NoError(t, err)
	require.NoError(t, tkt.SetID(id))
	return tkt
}
