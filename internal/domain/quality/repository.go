package quality

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Check) error
	GetByQualityID(ctx context.Context, qualityID string) (*Check, error)
	// Finalize overwrites status and remarks unconditionally.
	Finalize(ctx context.Context, qualityID string, status VerificationStatus, remarks string, at time.Time) error
	CountPending(ctx context.Context) (int64, error)
}
