package model

import (
	"jamat/shared/model"
)

const (
	TableName  = "external_groups"
	EntityName = "external_group"

	FieldID   = "id"
	FieldType = "type"
	FieldName = "name"
)

// Group is a visiting party from outside the region's mosques.
type Group struct {
	ID   int64  `db:"id"   insert:"-"`
	Type string `db:"type"`
	Name string `db:"name"`
	model.Metadata
}
