package dto

import (
	"jamat/internal/domains/dashboard/model"
	visitModel "jamat/internal/domains/visit/model"
	visitDto "jamat/internal/domains/visit/model/dto"
	"jamat/shared/constant"
	"jamat/shared/date"
	"strconv"
)

type FiltersResponse struct {
	StartDate      date.Date `json:"start_date"`
	EndDate        date.Date `json:"end_date"`
	HostFilter     string    `json:"host_filter"`
	VisitingFilter string    `json:"visiting_filter"`
}

func (r *FiltersResponse) FromQuery(query visitDto.VisitQuery) {
	r.StartDate = query.Window.Start
	r.EndDate = query.Window.End
	r.HostFilter = idOrAll(query.HostMosqueID)
	r.VisitingFilter = idOrAll(query.VisitingMosqueID)
}

type OptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromOptions(options []visitModel.MosqueOption) []OptionResponse {
	res := make([]OptionResponse, len(options))
	for i, option := range options {
		res[i] = OptionResponse{ID: option.ID, Name: option.Name}
	}

	return res
}

type DashboardResponse struct {
	Filters             FiltersResponse             `json:"filters"`
	Visits              []visitDto.VisitRowResponse `json:"visits"`
	Total               int                         `json:"total"`
	HostCounts          model.Counts                `json:"host_counts"`
	VisitingCounts      model.Counts                `json:"visiting_counts"`
	VisitingGroupCounts model.Counts                `json:"visiting_group_counts"`
	HostOptions         []OptionResponse            `json:"host_options"`
	VisitingOptions     []OptionResponse            `json:"visiting_options"`
}

func (r *DashboardResponse) FromSummary(summary model.Summary) {
	r.Total = summary.Total
	r.HostCounts = summary.HostCounts
	r.VisitingCounts = summary.VisitingCounts
	r.VisitingGroupCounts = summary.GroupCounts
}

func idOrAll(id *int64) string {
	if id == nil {
		return constant.FilterAll
	}

	return strconv.FormatInt(*id, 10)
}
