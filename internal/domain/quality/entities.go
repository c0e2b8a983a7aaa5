package quality

import (
	"errors"
	"time"
)

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "Pending"
	StatusApproved VerificationStatus = "Approved"
	StatusRejected VerificationStatus = "Rejected"
)

const DefaultVerifier = "AI_System"

var (
	ErrNotFound        = errors.New("quality report not found")
	ErrInvalidDecision = errors.New("decision must be Approved or Rejected")
)

// ParseDecision accepts only the two final states.
func ParseDecision(s string) (VerificationStatus, error) {
	switch d := VerificationStatus(s); d {
	case StatusApproved, StatusRejected:
		return d, nil
	}
	return "", ErrInvalidDecision
}

type Check struct {
	QualityID          string             `bson:"qualityId" json:"qualityId"`
	ContractID         string             `bson:"contractId" json:"contractId"`
	QualityScore       float64            `bson:"qualityScore" json:"qualityScore"`
	Grade              string             `bson:"grade" json:"grade"`
	Remarks            string             `bson:"remarks" json:"remarks"`
	Parameters         map[string]string  `bson:"parameters" json:"parameters"`
	VerifiedBy         string             `bson:"verifiedBy" json:"verifiedBy"`
	VerificationStatus VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	VerifiedAt         *time.Time         `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
