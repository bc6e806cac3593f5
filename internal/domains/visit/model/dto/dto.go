package dto

import (
	"database/sql"
	"jamat/internal/domains/visit/model"
	"jamat/shared"
	"jamat/shared/constant"
	"jamat/shared/date"
	gDto "jamat/shared/dto"
	"jamat/shared/failure"
	gModel "jamat/shared/model"
	"jamat/shared/timezone"
	"net/http"
	"strings"
)

// OverlapWarning is returned when the host already has a visit inside the submitted range.
const OverlapWarning = "Warning: This mosque already has a booking in this range!"

type RegisterVisitRequest struct {
	HostMosqueID     int64  `json:"host_mosque_id"     validate:"required,gt=0"`
	VisitingMosqueID *int64 `json:"visiting_mosque_id" validate:"omitempty,gt=0"`
	VisitingGroupID  *int64 `json:"visiting_group_id"  validate:"omitempty,gt=0"`
	StartDate        string `json:"start_date"         validate:"required,date"`
	EndDate          string `json:"end_date"           validate:"required,date"`
	Notes            string `json:"notes"              validate:"omitempty,max=2000"`
}

// Period parses both dates and rejects an inverted range.
func (r *RegisterVisitRequest) Period() (model.Period, error) {
	start, err := date.Parse(r.StartDate)
	if err != nil {
		return model.Period{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	end, err := date.Parse(r.EndDate)
	if err != nil {
		return model.Period{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	period, err := model.NewPeriod(start, end)
	if err != nil {
		return model.Period{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return period, nil
}

func (r *RegisterVisitRequest) Visitor() (model.Visitor, error) {
	visitor, err := model.NewVisitor(r.VisitingMosqueID, r.VisitingGroupID)
	if err != nil {
		return model.Visitor{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return visitor, nil
}

// ToModel builds one row covering period.
func (r *RegisterVisitRequest) ToModel(visitor model.Visitor, period model.Period, actor string) model.Visit {
	mosqueID, groupID := visitor.Columns()

	return model.Visit{
		HostMosqueID:     r.HostMosqueID,
		VisitingMosqueID: mosqueID,
		VisitingGroupID:  groupID,
		StartDate:        period.Start,
		EndDate:          period.End,
		Notes:            strings.TrimSpace(r.Notes),
		Metadata:         gModel.NewMetadata(actor),
	}
}

type RegisterVisitResponse struct {
	CreatedIDs     []int64 `json:"created_ids"`
	Warning        string  `json:"warning,omitempty"`
	OverlappingIDs []int64 `json:"overlapping_ids,omitempty"`
}

// VisitQueryRequest holds the raw dashboard and listing parameters.
type VisitQueryRequest struct {
	StartDate      string `json:"start_date"      validate:"omitempty,date"`
	EndDate        string `json:"end_date"        validate:"omitempty,date"`
	HostFilter     string `json:"host_filter"     validate:"omitempty,idfilter"`
	VisitingFilter string `json:"visiting_filter" validate:"omitempty,idfilter"`
	gDto.QueryParams
}

func (r *VisitQueryRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.StartDate = strings.TrimSpace(query.Get(constant.RequestParamStartDate))
	r.EndDate = strings.TrimSpace(query.Get(constant.RequestParamEndDate))
	r.HostFilter = strings.TrimSpace(query.Get(constant.RequestParamHostFilter))
	r.VisitingFilter = strings.TrimSpace(query.Get(constant.RequestParamVisitingFilter))
	r.QueryParams.FromRequest(req)
}

// ToQuery applies the window defaults and parses the id filters.
func (r *VisitQueryRequest) ToQuery(epoch, today date.Date) (VisitQuery, error) {
	start, err := timezone.ParseDate(r.StartDate, epoch)
	if err != nil {
		return VisitQuery{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	end, err := timezone.ParseDate(r.EndDate, today)
	if err != nil {
		return VisitQuery{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	window, err := model.NewPeriod(start, end)
	if err != nil {
		return VisitQuery{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	hostID, err := shared.ParseIDFilter(r.HostFilter, constant.RequestParamHostFilter)
	if err != nil {
		return VisitQuery{}, err //nolint:wrapcheck
	}

	visitingID, err := shared.ParseIDFilter(r.VisitingFilter, constant.RequestParamVisitingFilter)
	if err != nil {
		return VisitQuery{}, err //nolint:wrapcheck
	}

	sortDir := gDto.SortDirAsc
	if r.SortDir == gDto.SortDirDesc {
		sortDir = gDto.SortDirDesc
	}

	return VisitQuery{
		Window:           window,
		HostMosqueID:     hostID,
		VisitingMosqueID: visitingID,
		SortDir:          sortDir,
		Page:             r.Page,
		Limit:            r.Limit,
	}, nil
}

// VisitQuery is a resolved visit filter. Nil ids mean "all".
type VisitQuery struct {
	Window           model.Period
	HostMosqueID     *int64
	VisitingMosqueID *int64
	SortDir          string
	Page             int
	Limit            int
}

// Filter matches visits whose start_date falls inside the window, bounds included.
func (q VisitQuery) Filter() gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			ArgName:  "window_start",
			Field:    model.FieldStartDate,
			Value:    q.Window.Start,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "window_end",
			Field:    model.FieldStartDate,
			Value:    q.Window.End,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
	}

	if q.HostMosqueID != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldHostMosqueID,
			Value:    *q.HostMosqueID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if q.VisitingMosqueID != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldVisitingMosqueID,
			Value:    *q.VisitingMosqueID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.And(filters...)
}

// Params orders by start_date; the repository breaks ties by id.
func (q VisitQuery) Params() gDto.QueryParams {
	sortDir := q.SortDir
	if sortDir == "" {
		sortDir = gDto.SortDirAsc
	}

	return gDto.QueryParams{
		Page:    q.Page,
		Limit:   q.Limit,
		SortBy:  model.TableName + "." + model.FieldStartDate,
		SortDir: sortDir,
	}
}

type VisitorResponse struct {
	Kind model.VisitorKind `json:"kind"`
	ID   int64             `json:"id"`
	Name *string           `json:"name"`
	Type *string           `json:"type,omitempty"`
}

type VisitRowResponse struct {
	ID                 int64            `json:"id"`
	HostMosqueID       int64            `json:"host_mosque_id"`
	HostName           *string          `json:"host_name"`
	VisitingMosqueID   *int64           `json:"visiting_mosque_id"`
	VisitingMosqueName *string          `json:"visiting_mosque_name"`
	VisitingGroupID    *int64           `json:"visiting_group_id"`
	VisitingGroupName  *string          `json:"visiting_group_name"`
	Visitor            *VisitorResponse `json:"visitor"`
	StartDate          date.Date        `json:"start_date"`
	EndDate            date.Date        `json:"end_date"`
	Notes              string           `json:"notes"`
	gDto.Metadata
}

func (r *VisitRowResponse) FromModel(row model.VisitRow) {
	r.ID = row.ID
	r.HostMosqueID = row.HostMosqueID
	r.HostName = nullString(row.HostName)
	r.VisitingMosqueID = nullInt(row.VisitingMosqueID)
	r.VisitingMosqueName = nullString(row.VisitingMosqueName)
	r.VisitingGroupID = nullInt(row.VisitingGroupID)
	r.VisitingGroupName = nullString(row.VisitingGroupName)
	r.StartDate = row.StartDate
	r.EndDate = row.EndDate
	r.Notes = row.Notes
	r.Metadata.FromModel(row.Metadata)

	switch {
	case row.VisitingMosqueID.Valid:
		r.Visitor = &VisitorResponse{Kind: model.VisitorMosque, ID: row.VisitingMosqueID.Int64, Name: r.VisitingMosqueName}
	case row.VisitingGroupID.Valid:
		r.Visitor = &VisitorResponse{
			Kind: model.VisitorGroup,
			ID:   row.VisitingGroupID.Int64,
			Name: r.VisitingGroupName,
			Type: nullString(row.VisitingGroupType),
		}
	}
}

func FromRows(rows []model.VisitRow) []VisitRowResponse {
	res := make([]VisitRowResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	return res
}

type GetVisitsResponse struct {
	Visits    []VisitRowResponse `json:"visits"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetVisitsResponse) FromModels(rows []model.VisitRow, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Visits = FromRows(rows)
}

// RegisteredEvent is published after a registration commits.
type RegisteredEvent struct {
	VisitIDs     []int64       `json:"visit_ids"`
	HostMosqueID int64         `json:"host_mosque_id"`
	Visitor      model.Visitor `json:"visitor"`
	StartDate    date.Date     `json:"start_date"`
	EndDate      date.Date     `json:"end_date"`
	Granularity  string        `json:"granularity"`
	Overlap      bool          `json:"overlap"`
	RegisteredBy string        `json:"registered_by"`
}

func nullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}

	return &value.String
}

func nullInt(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}

	return &value.Int64
}
