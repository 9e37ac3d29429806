package editor

import (
	"resumeforge/resume/edit"
	"resumeforge/resume/model"
)

// OpKind names a document mutation.
type OpKind string

const (
	OpUpdateField OpKind = "updateField"
	OpInsertEntry OpKind = "insertEntry"
	OpUpdateEntry OpKind = "updateEntry"
	OpSetCurrent  OpKind = "setCurrent"
	OpRemoveEntry OpKind = "removeEntry"
	OpMoveEntry   OpKind = "moveEntry"
	OpSetSkills   OpKind = "setSkills"
)

// Op is one mutation intent coming from a section editor. Which fields are
// read depends on Kind.
type Op struct {
	Kind      OpKind         `json:"kind"`
	Path      string         `json:"path,omitempty"`
	Value     string         `json:"value,omitempty"`
	Section   model.Section  `json:"section,omitempty"`
	EntryID   string         `json:"entryId,omitempty"`
	Field     string         `json:"field,omitempty"`
	Index     int            `json:"index,omitempty"`
	Direction edit.Direction `json:"direction,omitempty"`
	Current   bool           `json:"current,omitempty"`
	Skills    string         `json:"skills,omitempty"`
}
