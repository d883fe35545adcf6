package usecases

import (
	"testing"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
)

func storedFeatureRequest(t *testing.T, id, requesterID uint) *featurerequest.FeatureRequest {
	t.Helper()
	fr, err := featurerequest.NewFeatureRequest("Dark mode", "reduce eye strain on night shifts", "", "", requesterID)
	if err != nil {
		t.Fatalf("building feature request: %v", err)
	}
	if err := fr.SetID(id); err != nil {
		t.Fatalf("setting feature request ID: %v", err)
	}
	return fr
}
