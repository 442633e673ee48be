package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessKeepsUnknownFields(t *testing.T) {
	raw := `{"_id":"b-1","name":"Panadería Sol","checklist":"cl-1","ruc":"1790012345001","socials":{"ig":"@sol"}}`

	var b Business
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, "cl-1", b.ChecklistID)
	assert.Equal(t, "1790012345001", b.Extra["ruc"])
	assert.NotContains(t, b.Extra, "name")

	b.Name = "Panadería Sol 2"
	out, err := json.Marshal(b)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Equal(t, "Panadería Sol 2", fields["name"], "named fields win over Extra")
	assert.Equal(t, map[string]any{"ig": "@sol"}, fields["socials"])
}

func TestBusinessWithoutExtraHasNilMap(t *testing.T) {
	var b Business
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"b-1","name":"x"}`), &b))
	assert.Nil(t, b.Extra)
}

func TestBusinessPatchIsEmpty(t *testing.T) {
	assert.True(t, BusinessPatch{}.IsEmpty())

	phone := "+593 99 000 0000"
	assert.False(t, BusinessPatch{Phone: &phone}.IsEmpty())
}

func TestMeetingStatusResult(t *testing.T) {
	t.Run("zero value is not loaded", func(t *testing.T) {
		var r MeetingStatusResult
		assert.Equal(t, MeetingStatusNotLoaded, r.Status())

		out, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"not_loaded"}`, string(out))
	})

	t.Run("failure carries the message", func(t *testing.T) {
		out, err := json.Marshal(MeetingStatusFailedResult(errors.New("backend down")))
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"failed","error":"backend down"}`, string(out))
	})

	t.Run("found keeps the meeting", func(t *testing.T) {
		r := MeetingStatusFoundResult(Meeting{ID: "m-1"})
		assert.Equal(t, MeetingStatusFound, r.Status())
		require.NotNil(t, r.Meeting)
		assert.Equal(t, "m-1", r.Meeting.ID)
	})
}
