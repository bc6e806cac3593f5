package model

import (
	"database/sql"
	"errors"
)

type VisitorKind string

const (
	VisitorMosque VisitorKind = "mosque"
	VisitorGroup  VisitorKind = "group"
)

var (
	ErrNoVisitor        = errors.New("either visiting_mosque_id or visiting_group_id is required")
	ErrAmbiguousVisitor = errors.New("only one of visiting_mosque_id or visiting_group_id may be set")
)

// Visitor is the visiting party: another mosque or an external group, never both.
type Visitor struct {
	Kind VisitorKind `json:"kind"`
	ID   int64       `json:"id"`
}

func NewVisitor(mosqueID, groupID *int64) (Visitor, error) {
	switch {
	case mosqueID != nil && groupID != nil:
		return Visitor{}, ErrAmbiguousVisitor
	case mosqueID != nil:
		return Visitor{Kind: VisitorMosque, ID: *mosqueID}, nil
	case groupID != nil:
		return Visitor{Kind: VisitorGroup, ID: *groupID}, nil
	default:
		return Visitor{}, ErrNoVisitor
	}
}

// Columns splits the visitor into the two nullable reference columns.
func (v Visitor) Columns() (mosqueID, groupID sql.NullInt64) {
	switch v.Kind {
	case VisitorMosque:
		mosqueID = sql.NullInt64{Int64: v.ID, Valid: true}
	case VisitorGroup:
		groupID = sql.NullInt64{Int64: v.ID, Valid: true}
	}

	return mosqueID, groupID
}
