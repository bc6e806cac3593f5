package model

import "time"

// Metadata is embedded in every table row. Timestamps are filled by column defaults.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  insert:"-" json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" insert:"-" json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps the actor on both audit columns.
func NewMetadata(actor string) Metadata {
	return Metadata{CreatedBy: actor, ModifiedBy: actor}
}
