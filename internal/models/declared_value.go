package models

import "strings"

// DeclaredValue is the optional per-day value of an event. The storage
// layer sometimes holds bare scalars and sometimes structured records;
// everything collapses to this option type at the lookup boundary.
// Whitespace-only values count as absent.
type DeclaredValue struct {
	value   string
	present bool
}

func NewDeclaredValue(raw string) DeclaredValue {
	v := strings.TrimSpace(raw)
	if v == "" {
		return DeclaredValue{}
	}
	return DeclaredValue{value: v, present: true}
}

func (d DeclaredValue) Present() bool { return d.present }

func (d DeclaredValue) Value() (string, bool) { return d.value, d.present }

// Ptr returns the value as a nullable pointer for wire structs.
func (d DeclaredValue) Ptr() *string {
	if !d.present {
		return nil
	}
	v := d.value
	return &v
}
