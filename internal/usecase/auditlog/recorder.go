package auditlog

import (
	"context"

	"agrimarket-backend/internal/domain/audit"
	"agrimarket-backend/internal/domain/user"
	"agrimarket-backend/pkg/id"

	"go.uber.org/zap"
)

// Recorder appends to the audit ledger. A failed write is logged, not returned:
// the business action has already happened by the time it is recorded.
type Recorder struct {
	repo audit.Repository
	log  *zap.Logger
}

func NewRecorder(repo audit.Repository, log *zap.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

func (r *Recorder) Record(ctx context.Context, actor user.Principal, action audit.Action, subjectID, outcome, reason string) {
	if r == nil || r.repo == nil {
		return
	}
	e := &audit.Entry{
		EntryID:   id.NewID32(),
		ActorID:   actor.UserID,
		ActorRole: string(actor.Role),
		Action:    action,
		SubjectID: subjectID,
		Outcome:   outcome,
		Reason:    reason,
	}
	if err := r.repo.Create(ctx, e); err != nil {
		r.log.Error("audit write failed",
			zap.String("action", string(action)),
			zap.String("subject", subjectID),
			zap.Error(err),
		)
	}
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	return r.repo.ListRecent(ctx, limit)
}
