package dto

import (
	"jamat/internal/domains/mosque/model"
	visitDto "jamat/internal/domains/visit/model/dto"
	"jamat/shared"
	gDto "jamat/shared/dto"
	gModel "jamat/shared/model"
	"strings"
)

type MosqueResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
	gDto.Metadata
}

func (r *MosqueResponse) FromModel(model model.Mosque) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Phone = model.Phone
	r.Email = model.Email
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetMosquesResponse struct {
	Mosques   []MosqueResponse `json:"mosques"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMosquesResponse) FromModels(models []model.Mosque, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Mosques = make([]MosqueResponse, len(models))
	for i, mod := range models {
		r.Mosques[i].FromModel(mod)
	}
}

// MosqueDetailResponse is a mosque with every visit it hosts, oldest first.
type MosqueDetailResponse struct {
	Mosque       MosqueResponse              `json:"mosque"`
	HostedVisits []visitDto.VisitRowResponse `json:"hosted_visits"`
}

// ImportMosque is one seed row keyed by the seed file's header names.
type ImportMosque struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Address string `json:"address" validate:"omitempty"`
	Phone   string `json:"phone"   validate:"omitempty,max=50"`
	Email   string `json:"email"   validate:"omitempty,email,max=255"`
	Notes   string `json:"notes"   validate:"omitempty"`
}

func (i ImportMosque) ToModel(actor string) model.Mosque {
	return model.Mosque{
		Name:     strings.TrimSpace(i.Name),
		Address:  strings.TrimSpace(i.Address),
		Phone:    strings.TrimSpace(i.Phone),
		Email:    strings.TrimSpace(i.Email),
		Notes:    strings.TrimSpace(i.Notes),
		Metadata: gModel.NewMetadata(actor),
	}
}
