package models

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusConfirmed MeetingStatus = "confirmed"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

type MeetingType string

const (
	MeetingTypePortfolioAccess MeetingType = "portfolio_access"
	MeetingTypeDataStrategy    MeetingType = "data_strategy"
)

// Meeting is a scheduled call, optionally linked to a client and a business.
type Meeting struct {
	ID            string        `json:"_id"`
	Client        string        `json:"client,omitempty"`
	Business      string        `json:"business,omitempty"`
	AssignedTo    string        `json:"assignedTo,omitempty"`
	Status        MeetingStatus `json:"status"`
	MeetingType   MeetingType   `json:"meetingType"`
	ScheduledTime *time.Time    `json:"scheduledTime,omitempty"`
	EndTime       *time.Time    `json:"endTime,omitempty"`
	MeetingLink   string        `json:"meetingLink,omitempty"`
	Source        string        `json:"source,omitempty"`
	SourceID      string        `json:"sourceId,omitempty"`
	AttendeeEmail string        `json:"attendeeEmail,omitempty"`
	AttendeePhone string        `json:"attendeePhone,omitempty"`
	CreatedAt     time.Time     `json:"createdAt,omitzero"`
	UpdatedAt     time.Time     `json:"updatedAt,omitzero"`
}

// MeetingStatusResponse is the payload of GET clients/{clientId}/meeting-status.
type MeetingStatusResponse struct {
	HasScheduledMeeting bool     `json:"hasScheduledMeeting"`
	Meeting             *Meeting `json:"meeting,omitempty"`
	Message             string   `json:"message,omitempty"`
}

// AllMeetingsResponse is the payload of GET client/{clientId}/all-meetings.
type AllMeetingsResponse struct {
	Message  string    `json:"message"`
	Meetings []Meeting `json:"meetings"`
}

// ConfirmationResponse is returned by the confirm/complete meeting endpoints.
type ConfirmationResponse struct {
	Message         string   `json:"message"`
	StrategyMeeting *Meeting `json:"strategyMeeting"`
}

// AssignMeetingRequest links a meeting to a client and optionally a business.
type AssignMeetingRequest struct {
	ClientID   string `json:"clientId"`
	BusinessID string `json:"businessId,omitempty"`
}
