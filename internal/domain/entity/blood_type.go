package entity

import (
	"strings"
	"unicode"
)

// BloodType is an ABO/Rh blood group such as "O+" or "AB-".
type BloodType string

var bloodTypes = map[BloodType]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

// ParseBloodType normalizes spacing and case and reports whether the result is a known group.
func ParseBloodType(raw string) (BloodType, bool) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	bt := BloodType(b.String())
	_, ok := bloodTypes[bt]

	return bt, ok
}

// String returns the string representation of the BloodType.
func (bt BloodType) String() string {
	return string(bt)
}

// IsValid reports whether bt is one of the eight known groups.
func (bt BloodType) IsValid() bool {
	_, ok := bloodTypes[bt]

	return ok
}
