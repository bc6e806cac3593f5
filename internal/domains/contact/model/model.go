package model

import (
	"jamat/shared/model"
)

const (
	TableName  = "contact_messages"
	EntityName = "contact_message"

	FieldID = "id"
)

type ContactMessage struct {
	ID      int64  `db:"id"      insert:"-"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Message string `db:"message"`
	model.Metadata
}
