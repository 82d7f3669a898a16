package entity

import "time"

// Appointment statuses.
const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusMissed    = "Missed"
)

// LeadRef is the lead summary the backend embeds in appointment payloads.
type LeadRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Appointment is a scheduled follow-up tied to a lead.
type Appointment struct {
	ID     string    `json:"_id"`
	Lead   LeadRef   `json:"leadId"`
	Date   time.Time `json:"date"`
	Reason string    `json:"reason,omitempty"`
	Note   string    `json:"note,omitempty"`
	Status string    `json:"status"`
}

func AppointmentStatuses() []string {
	return []string{StatusUpcoming, StatusCompleted, StatusCancelled, StatusMissed}
}
