package task

import (
	"encoding/json"
	"time"
)

// fieldSet records which keys a decoded record did not carry.
type fieldSet uint8

const (
	absentID fieldSet = 1 << iota
	absentDescription
	absentStatus
)

// taskJSON is the on-disk shape of a Task. Pointers distinguish a missing
// key (nil) from a zero value.
type taskJSON struct {
	ID          *int       `json:"id,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// MarshalJSON writes every field except those that were absent on read and
// are still zero.
func (t Task) MarshalJSON() ([]byte, error) {
	out := taskJSON{
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.ID != 0 || t.absent&absentID == 0 {
		id := t.ID
		out.ID = &id
	}
	if t.Description != "" || t.absent&absentDescription == 0 {
		desc := t.Description
		out.Description = &desc
	}
	if t.Status != "" || t.absent&absentStatus == 0 {
		status := t.Status
		out.Status = &status
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a record, defaulting missing keys to zero values.
func (t *Task) UnmarshalJSON(data []byte) error {
	var in taskJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*t = Task{
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
	if in.ID != nil {
		t.ID = *in.ID
	} else {
		t.absent |= absentID
	}
	if in.Description != nil {
		t.Description = *in.Description
	} else {
		t.absent |= absentDescription
	}
	if in.Status != nil {
		t.Status = *in.Status
	} else {
		t.absent |= absentStatus
	}
	return nil
}
