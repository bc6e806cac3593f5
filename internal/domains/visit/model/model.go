package model

import (
	"database/sql"
	"jamat/shared/date"
	"jamat/shared/model"
)

const (
	TableName  = "visits"
	EntityName = "visit"

	FieldID               = "id"
	FieldHostMosqueID     = "host_mosque_id"
	FieldVisitingMosqueID = "visiting_mosque_id"
	FieldVisitingGroupID  = "visiting_group_id"
	FieldStartDate        = "start_date"
	FieldEndDate          = "end_date"
	FieldNotes            = "notes"
)

// Join aliases used by VisitRow.
const (
	AliasHost     = "host"
	AliasVisiting = "visiting"
	AliasGroup    = "grp"
)

type Visit struct {
	ID               int64         `db:"id"                 insert:"-"`
	HostMosqueID     int64         `db:"host_mosque_id"`
	VisitingMosqueID sql.NullInt64 `db:"visiting_mosque_id"`
	VisitingGroupID  sql.NullInt64 `db:"visiting_group_id"`
	StartDate        date.Date     `db:"start_date"`
	EndDate          date.Date     `db:"end_date"`
	Notes            string        `db:"notes"`
	model.Metadata
}

func (v Visit) Period() Period {
	return Period{Start: v.StartDate, End: v.EndDate}
}

// VisitRow is a visit with host and visitor names resolved through left joins.
// A dangling reference leaves the matching name invalid.
type VisitRow struct {
	ID                 int64          `db:"id"`
	HostMosqueID       int64          `db:"host_mosque_id"`
	VisitingMosqueID   sql.NullInt64  `db:"visiting_mosque_id"`
	VisitingGroupID    sql.NullInt64  `db:"visiting_group_id"`
	StartDate          date.Date      `db:"start_date"`
	EndDate            date.Date      `db:"end_date"`
	Notes              string         `db:"notes"`
	HostName           sql.NullString `db:"host_name"            table:"host"     column:"name"`
	VisitingMosqueName sql.NullString `db:"visiting_mosque_name" table:"visiting" column:"name"`
	VisitingGroupName  sql.NullString `db:"visiting_group_name"  table:"grp"      column:"name"`
	VisitingGroupType  sql.NullString `db:"visiting_group_type"  table:"grp"      column:"type"`
	model.Metadata
}

func (VisitRow) GetJoinQuery() string {
	return "LEFT JOIN mosques host ON host.id = visits.host_mosque_id " +
		"LEFT JOIN mosques visiting ON visiting.id = visits.visiting_mosque_id " +
		"LEFT JOIN external_groups grp ON grp.id = visits.visiting_group_id"
}

func (r VisitRow) Period() Period {
	return Period{Start: r.StartDate, End: r.EndDate}
}

// MosqueOption is a visiting mosque offered as a dashboard filter choice.
type MosqueOption struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
