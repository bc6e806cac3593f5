package dto

import (
	"jamat/internal/domains/contact/model"
	"jamat/shared/constant"
	gModel "jamat/shared/model"
	"strings"
)

const ThankYouMessage = "Thank you for contacting us! We'll review your message shortly."

type SubmitContactRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Phone   string `json:"phone"   validate:"omitempty,max=50"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *SubmitContactRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Message:  strings.TrimSpace(r.Message),
		Metadata: gModel.NewMetadata(constant.ContextGuest),
	}
}

type SubmitContactResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
