package dto

import (
	"jamat/shared/constant"
	"jamat/shared/model"
	"jamat/shared/timezone"
	"time"
)

// Metadata is the audit trail rendered on every resource. Rows are append-only, so the
// modification pair is emitted only when it says something the creation pair does not.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = stamp(source.CreatedAt)
	m.CreatedBy = source.CreatedBy

	if source.ModifiedAt.Equal(source.CreatedAt) && source.ModifiedBy == source.CreatedBy {
		return
	}

	m.ModifiedAt = stamp(source.ModifiedAt)
	m.ModifiedBy = source.ModifiedBy
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
