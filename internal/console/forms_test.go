package console

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	fields, ok := err.(validation.Errors)
	require.True(t, ok, "expected field-level validation errors, got %v", err)
	return fields
}

func TestLoginFormValidation(t *testing.T) {
	assert.NoError(t, LoginForm{Email: "ana@example.com", Password: "pw"}.Validate())

	fields := fieldErrors(t, LoginForm{Email: "nope", Password: ""}.Validate())
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestResetPasswordFormRequiresMatchingConfirmation(t *testing.T) {
	form := ResetPasswordForm{
		Email:           "ana@example.com",
		NewPassword:     "secret-1",
		ConfirmPassword: "secret-2",
	}
	fields := fieldErrors(t, form.Validate())
	assert.Contains(t, fields, "confirmPassword")

	form.ConfirmPassword = "secret-1"
	assert.NoError(t, form.Validate())
}

func TestLeadFormValidation(t *testing.T) {
	assert.NoError(t, LeadForm{Name: "Ana", Source: "Website", Stage: "New", Score: "Hot"}.Validate())

	fields := fieldErrors(t, LeadForm{}.Validate())
	assert.Contains(t, fields, "name")

	fields = fieldErrors(t, LeadForm{Name: "Ana", Source: "Carrier Pigeon"}.Validate())
	assert.Contains(t, fields, "source")

	// Optional email is only checked when present.
	assert.NoError(t, LeadForm{Name: "Ana"}.Validate())
	fields = fieldErrors(t, LeadForm{Name: "Ana", Email: "broken"}.Validate())
	assert.Contains(t, fields, "email")
}

func TestAppointmentFormValidation(t *testing.T) {
	assert.NoError(t, AppointmentForm{LeadID: "1", Date: "2025-06-15T10:00", Status: "Upcoming"}.Validate())

	fields := fieldErrors(t, AppointmentForm{}.Validate())
	assert.Contains(t, fields, "leadId")
	assert.Contains(t, fields, "date")

	fields = fieldErrors(t, AppointmentForm{LeadID: "1", Date: "2025-06-15T10:00", Status: "Paused"}.Validate())
	assert.Contains(t, fields, "status")
}
