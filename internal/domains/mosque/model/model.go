package model

import (
	"jamat/shared/model"
)

const (
	TableName  = "mosques"
	EntityName = "mosque"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldNotes   = "notes"
)

type Mosque struct {
	ID      int64  `db:"id"      insert:"-"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Phone   string `db:"phone"`
	Email   string `db:"email"`
	Notes   string `db:"notes"`
	model.Metadata
}
