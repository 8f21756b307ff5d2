package broadcast

import (
	"fmt"

	"github.com/PreciousMuemi/forest-link/internal/models"
)

// Result summarises one broadcast run.
type Result struct {
	Broadcast models.AlertBroadcast `json:"broadcast"`
	Attempted int                   `json:"attempted"`
	Sent      int                   `json:"sent"`
	Failed    int                   `json:"failed"`
	Warnings  []string              `json:"warnings,omitempty"`
}

// PartialFailure returns ErrPartialSendFailure when some recipients were not reached.
func (r Result) PartialFailure() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrPartialSendFailure, r.Failed, r.Attempted)
}
