package dto

import (
	"jamat/internal/domains/group/model"
	"jamat/shared"
	gDto "jamat/shared/dto"
	gModel "jamat/shared/model"
	"strings"
)

type GroupResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	gDto.Metadata
}

func (r *GroupResponse) FromModel(model model.Group) {
	r.ID = model.ID
	r.Type = model.Type
	r.Name = model.Name
	r.Metadata.FromModel(model.Metadata)
}

type GetGroupsResponse struct {
	Groups    []GroupResponse `json:"groups"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGroupsResponse) FromModels(models []model.Group, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Groups = make([]GroupResponse, len(models))
	for i, mod := range models {
		r.Groups[i].FromModel(mod)
	}
}

type ImportGroup struct {
	Type string `json:"type" validate:"omitempty,max=100"`
	Name string `json:"name" validate:"required,max=255"`
}

func (i ImportGroup) ToModel(actor string) model.Group {
	return model.Group{
		Type:     strings.TrimSpace(i.Type),
		Name:     strings.TrimSpace(i.Name),
		Metadata: gModel.NewMetadata(actor),
	}
}
