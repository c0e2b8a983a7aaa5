package insight

import "context"

type Repository interface {
	Create(ctx context.Context, in *Insight) error
	LatestByContractID(ctx context.Context, contractID string) (*Insight, error)
}
