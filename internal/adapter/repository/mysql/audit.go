package mysql

import (
	"context"

	auditDomain "agrimarket-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

// Migrate creates or updates the audit_entries table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&auditDomain.Entry{})
}

func (r *AuditRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]auditDomain.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *AuditRepository) ListBySubject(ctx context.Context, subjectID string) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
