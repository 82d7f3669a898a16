package console

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
)

// Form payloads are validated console-side before any backend call;
// the backend still owns authoritative validation.

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

type SignupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(6, 0)),
	)
}

type ResetPasswordForm struct {
	Email           string `json:"email"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (f ResetPasswordForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.NewPassword, validation.Required, validation.Length(6, 0)),
		validation.Field(&f.ConfirmPassword, validation.Required,
			validation.In(f.NewPassword).Error("must match the new password")),
	)
}

type LeadForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Source       string `json:"source"`
	Stage        string `json:"stage"`
	Score        string `json:"score"`
	Note         string `json:"note"`
	FollowUpDate string `json:"followUpDate"`
}

func (f LeadForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, is.Email),
		validation.Field(&f.Source, validation.In(anyValues(entity.Sources())...)),
		validation.Field(&f.Stage, validation.In(anyValues(entity.Stages())...)),
		validation.Field(&f.Score, validation.In(anyValues(entity.Scores())...)),
	)
}

func (f LeadForm) Input() api.LeadInput {
	return api.LeadInput{
		Name:         f.Name,
		Email:        f.Email,
		Phone:        f.Phone,
		Source:       f.Source,
		Stage:        f.Stage,
		Score:        f.Score,
		Note:         f.Note,
		FollowUpDate: f.FollowUpDate,
	}
}

type AppointmentForm struct {
	LeadID string `json:"leadId"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Note   string `json:"note"`
	Status string `json:"status"`
}

func (f AppointmentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.LeadID, validation.Required),
		validation.Field(&f.Date, validation.Required),
		validation.Field(&f.Status, validation.In(anyValues(entity.AppointmentStatuses())...)),
	)
}

func (f AppointmentForm) Input() api.AppointmentInput {
	return api.AppointmentInput{
		LeadID: f.LeadID,
		Date:   f.Date,
		Reason: f.Reason,
		Note:   f.Note,
		Status: f.Status,
	}
}

type StageForm struct {
	Stage string `json:"stage"`
}

func (f StageForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Stage, validation.Required, validation.In(anyValues(entity.Stages())...)),
	)
}

type NoteForm struct {
	Note string `json:"note"`
}

func anyValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
