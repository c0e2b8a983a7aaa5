package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	List(ctx context.Context, f Filter) ([]Contract, error)

	// UpdateStatus moves a contract from `from` to `to` only while it is still in `from`.
	// Returns ErrInvalidTransition when the stored status no longer matches.
	UpdateStatus(ctx context.Context, contractID string, from, to Status) error

	// Accept writes buyerId and Active together, only while the contract is an open Draft.
	Accept(ctx context.Context, contractID, buyerID string) error
}
