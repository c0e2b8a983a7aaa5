package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// New returns a public, human-readable id such as "CTR-9F2C41A07B3E".
func New(prefix string) string {
	return prefix + "-" + strings.ToUpper(NewID32()[:12])
}
