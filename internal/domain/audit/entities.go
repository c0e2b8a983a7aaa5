package audit

import "time"

type Action string

const (
	ActionVerifyUser        Action = "admin.verify_user"
	ActionModerateContract  Action = "admin.moderate_contract"
	ActionVerifyQuality     Action = "admin.verify_quality"
	ActionContractStatus    Action = "contract.status"
	ActionPaymentVerified   Action = "payment.verified"
	ActionSignatureMismatch Action = "security.signature_mismatch"
	ActionContractMismatch  Action = "security.contract_mismatch"
)

// Table: audit_entries
type Entry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	EntryID   string    `gorm:"column:entry_id;type:char(32);not null;uniqueIndex:ux_audit_entry_id" json:"entryId"`
	ActorID   string    `gorm:"column:actor_id;size:64;index:idx_audit_actor" json:"actorId"`
	ActorRole string    `gorm:"column:actor_role;size:16" json:"actorRole"`
	Action    Action    `gorm:"column:action;size:64;not null" json:"action"`
	SubjectID string    `gorm:"column:subject_id;size:64;index:idx_audit_subject" json:"subjectId"`
	Outcome   string    `gorm:"column:outcome;size:32" json:"outcome"`
	Reason    string    `gorm:"column:reason;type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Entry) TableName() string { return "audit_entries" }
