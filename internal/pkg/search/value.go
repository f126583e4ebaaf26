package search

import "strings"

type valueKind int

const (
	kindMissing valueKind = iota
	kindString
	kindNumber
)

// Value is a typed sort key extracted from an entity. Comparing values of
// different kinds never panics; the mismatched pair compares as equal so the
// stable sort keeps their original relative order.
type Value struct {
	kind valueKind
	str  string
	num  float64
}

// String builds a string value. Comparison is case-insensitive; ISO-8601 date
// strings keep their chronological order under it.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Number builds a numeric value.
func Number(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// Int builds a numeric value from an int.
func Int(i int) Value {
	return Number(float64(i))
}

// Bool builds a numeric value from a bool, false before true.
func Bool(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

// MissingValue marks the sort key as absent on this record.
func MissingValue() Value {
	return Value{kind: kindMissing}
}

// Missing reports whether the key was absent.
func (v Value) Missing() bool {
	return v.kind == kindMissing
}

// Compare returns -1, 0 or 1 for the ascending order of v against o.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		return 0
	}
	switch v.kind {
	case kindString:
		a, b := strings.ToLower(v.str), strings.ToLower(o.str)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	case kindNumber:
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
	}
	return 0
}
