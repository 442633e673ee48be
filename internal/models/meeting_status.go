package models

import "encoding/json"

// MeetingStatusKind tags which variant a MeetingStatusResult holds.
type MeetingStatusKind string

const (
	MeetingStatusNotLoaded MeetingStatusKind = "not_loaded"
	MeetingStatusNotFound  MeetingStatusKind = "not_found"
	MeetingStatusFound     MeetingStatusKind = "found"
	MeetingStatusFailed    MeetingStatusKind = "failed"
)

// MeetingStatusResult is the last known answer to "does this client have a
// scheduled meeting". The zero value is NotLoaded.
type MeetingStatusResult struct {
	Kind    MeetingStatusKind
	Meeting *Meeting
	Err     error
}

func MeetingStatusFoundResult(m Meeting) MeetingStatusResult {
	return MeetingStatusResult{Kind: MeetingStatusFound, Meeting: &m}
}

func MeetingStatusNotFoundResult() MeetingStatusResult {
	return MeetingStatusResult{Kind: MeetingStatusNotFound}
}

func MeetingStatusFailedResult(err error) MeetingStatusResult {
	return MeetingStatusResult{Kind: MeetingStatusFailed, Err: err}
}

// Status returns the variant, treating the zero value as NotLoaded.
func (r MeetingStatusResult) Status() MeetingStatusKind {
	if r.Kind == "" {
		return MeetingStatusNotLoaded
	}
	return r.Kind
}

func (r MeetingStatusResult) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind    MeetingStatusKind `json:"kind"`
		Meeting *Meeting          `json:"meeting,omitempty"`
		Error   string            `json:"error,omitempty"`
	}{Kind: r.Status(), Meeting: r.Meeting}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}
