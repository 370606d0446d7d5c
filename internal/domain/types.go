package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sex is the registered sex of a resident
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// CivilStatus is the registered civil status of a resident
type CivilStatus string

const (
	CivilStatusSingle    CivilStatus = "single"
	CivilStatusMarried   CivilStatus = "married"
	CivilStatusWidowed   CivilStatus = "widowed"
	CivilStatusSeparated CivilStatus = "separated"
	CivilStatusDivorced  CivilStatus = "divorced"
)

// ReadMode selects the projection returned by resident reads. Both modes run the
// same audited decrypt path; masked is a display transform applied afterwards.
type ReadMode string

const (
	ReadModeFull   ReadMode = "full"
	ReadModeMasked ReadMode = "masked"
)

// Valid reports whether the read mode is recognized
func (m ReadMode) Valid() bool {
	return m == ReadModeFull || m == ReadModeMasked
}

// Household code segment widths. The dash-delimited layout
// RRPPMMBBB-SSSS-TTTT-HHHH is an externally visible persisted artifact and must
// be preserved byte-for-byte.
const (
	HouseholdCodeSegments    = 4
	HouseholdCodeSeqWidth    = 4
	HouseholdCodeHouseWidth  = 4
	HouseholdCodeTotalLength = GeoCodeLenBarangay + 3 + 3*HouseholdCodeSeqWidth
)

// HouseholdCode is the hierarchical household identifier
type HouseholdCode string

// Valid reports whether the code matches the canonical layout
func (c HouseholdCode) Valid() bool {
	if len(c) != HouseholdCodeTotalLength {
		return false
	}
	parts := strings.Split(string(c), "-")
	if len(parts) != HouseholdCodeSegments {
		return false
	}
	if len(parts[0]) != GeoCodeLenBarangay || !isDigits(parts[0]) {
		return false
	}
	for _, seg := range parts[1:] {
		if len(seg) != HouseholdCodeSeqWidth || !isDigits(seg) {
			return false
		}
	}
	return true
}

// BarangayCode extracts the barangay geo code segment
func (c HouseholdCode) BarangayCode() (GeoCode, error) {
	if !c.Valid() {
		return "", fmt.Errorf("household code %q is malformed: %w", c, ErrInvalidArgument)
	}
	return GeoCode(c[:GeoCodeLenBarangay]), nil
}

// ChangeSubject identifies what kind of record a change event refers to
type ChangeSubject string

const (
	ChangeSubjectHousehold  ChangeSubject = "household"
	ChangeSubjectResident   ChangeSubject = "resident"
	ChangeSubjectMembership ChangeSubject = "membership"
)

// ChangeEvent is the normalized record-change notification published to
// JetStream after a successful write so downstream consumers (municipal
// rollups, reporting) can follow registry mutations.
type ChangeEvent struct {
	EventID      string        `json:"event_id"`
	Subject      ChangeSubject `json:"subject"`
	SubjectID    string        `json:"subject_id"`
	BarangayCode GeoCode       `json:"barangay_code"`
	Operation    string        `json:"operation"`
	PrincipalID  string        `json:"principal_id"`
	Timestamp    time.Time     `json:"timestamp"`
}
