package rest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/registrar"
)

// birthdateLayout is the wire format for dates of birth
const birthdateLayout = "2006-01-02"

// CreateHouseholdRequest is the request body for registering a household
type CreateHouseholdRequest struct {
	BarangayCode    string           `json:"barangay_code"`
	SubdivisionName *string          `json:"subdivision_name,omitempty"`
	StreetName      *string          `json:"street_name,omitempty"`
	HouseNumber     string           `json:"house_number"`
	MonthlyIncome   *decimal.Decimal `json:"monthly_income,omitempty"`
}

// Validate validates the request body
func (r *CreateHouseholdRequest) Validate() error {
	if r.BarangayCode == "" {
		return errors.New("barangay_code is required")
	}
	if !domain.GeoCode(r.BarangayCode).Valid() {
		return fmt.Errorf("invalid barangay_code: %s", r.BarangayCode)
	}
	if strings.TrimSpace(r.HouseNumber) == "" {
		return errors.New("house_number is required")
	}
	return nil
}

// ToInput converts the request into a registrar input
func (r *CreateHouseholdRequest) ToInput() registrar.CreateHouseholdInput {
	return registrar.CreateHouseholdInput{
		BarangayCode:    domain.GeoCode(r.BarangayCode),
		SubdivisionName: r.SubdivisionName,
		StreetName:      r.StreetName,
		HouseNumber:     r.HouseNumber,
		MonthlyIncome:   r.MonthlyIncome,
	}
}

// UpdateHouseholdRequest is the request body for mutating a household.
// Omitted fields stay unchanged; clear_income removes the declared income.
type UpdateHouseholdRequest struct {
	MonthlyIncome  *decimal.Decimal `json:"monthly_income,omitempty"`
	ClearIncome    bool             `json:"clear_income,omitempty"`
	HeadResidentID *string          `json:"head_resident_id,omitempty"`
}

// Validate validates the request body
func (r *UpdateHouseholdRequest) Validate() error {
	if r.ClearIncome && r.MonthlyIncome != nil {
		return errors.New("monthly_income and clear_income are mutually exclusive")
	}
	if r.MonthlyIncome != nil && r.MonthlyIncome.IsNegative() {
		return errors.New("monthly_income must not be negative")
	}
	return nil
}

// ToInput converts the request into a registrar input
func (r *UpdateHouseholdRequest) ToInput() registrar.UpdateHouseholdInput {
	return registrar.UpdateHouseholdInput{
		MonthlyIncome:          r.MonthlyIncome,
		ClearIncome:            r.ClearIncome,
		HeadResidentExternalID: r.HeadResidentID,
	}
}

// ResidentRequest is the request body for creating or replacing a resident.
// Writes carry the full payload; partial updates are not supported because the
// encrypted identity set is sealed as a unit.
type ResidentRequest struct {
	BarangayCode string `json:"barangay_code"`

	GivenName    string `json:"given_name"`
	MiddleName   string `json:"middle_name,omitempty"`
	FamilyName   string `json:"family_name"`
	GovernmentID string `json:"government_id,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Email        string `json:"email,omitempty"`
	MotherMaiden string `json:"mother_maiden,omitempty"`

	Birthdate        string  `json:"birthdate"`
	Sex              string  `json:"sex"`
	CivilStatus      string  `json:"civil_status"`
	EducationLevel   string  `json:"education_level,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	OccupationCode   *string `json:"occupation_code,omitempty"`
	BirthPlaceCode   *string `json:"birth_place_code,omitempty"`
	BloodType        string  `json:"blood_type,omitempty"`
	Ethnicity        string  `json:"ethnicity,omitempty"`
	Religion         string  `json:"religion,omitempty"`

	CurrentlyEnrolled         bool `json:"currently_enrolled,omitempty"`
	GraduatedBeyondSecondary  bool `json:"graduated_beyond_secondary,omitempty"`
	RegisteredPWD             bool `json:"registered_pwd,omitempty"`
	RegisteredSoloParent      bool `json:"registered_solo_parent,omitempty"`
	OverseasWorker            bool `json:"overseas_worker,omitempty"`
	IndigenousGroupAffiliated bool `json:"indigenous_group_affiliated,omitempty"`
	MigratedWithinPeriod      bool `json:"migrated_within_period,omitempty"`
}

// Validate validates the request body
func (r *ResidentRequest) Validate() error {
	if r.BarangayCode == "" {
		return errors.New("barangay_code is required")
	}
	if !domain.GeoCode(r.BarangayCode).Valid() {
		return fmt.Errorf("invalid barangay_code: %s", r.BarangayCode)
	}
	if strings.TrimSpace(r.GivenName) == "" {
		return errors.New("given_name is required")
	}
	if strings.TrimSpace(r.FamilyName) == "" {
		return errors.New("family_name is required")
	}
	if r.Birthdate == "" {
		return errors.New("birthdate is required")
	}
	if _, err := time.Parse(birthdateLayout, r.Birthdate); err != nil {
		return fmt.Errorf("invalid birthdate: %s, expected YYYY-MM-DD", r.Birthdate)
	}
	return nil
}

// ToInput converts the request into a registrar input. Validate must have
// passed; the birthdate parse cannot fail here.
func (r *ResidentRequest) ToInput() registrar.ResidentInput {
	birthdate, _ := time.Parse(birthdateLayout, r.Birthdate)

	return registrar.ResidentInput{
		BarangayCode: domain.GeoCode(r.BarangayCode),

		GivenName:    r.GivenName,
		MiddleName:   r.MiddleName,
		FamilyName:   r.FamilyName,
		GovernmentID: r.GovernmentID,
		Mobile:       r.Mobile,
		Email:        r.Email,
		MotherMaiden: r.MotherMaiden,

		Birthdate:        birthdate,
		Sex:              domain.Sex(r.Sex),
		CivilStatus:      domain.CivilStatus(r.CivilStatus),
		EducationLevel:   r.EducationLevel,
		EmploymentStatus: domain.EmploymentStatus(r.EmploymentStatus),
		OccupationCode:   r.OccupationCode,
		BirthPlaceCode:   r.BirthPlaceCode,
		BloodType:        r.BloodType,
		Ethnicity:        r.Ethnicity,
		Religion:         r.Religion,

		CurrentlyEnrolled:         r.CurrentlyEnrolled,
		GraduatedBeyondSecondary:  r.GraduatedBeyondSecondary,
		RegisteredPWD:             r.RegisteredPWD,
		RegisteredSoloParent:      r.RegisteredSoloParent,
		OverseasWorker:            r.OverseasWorker,
		IndigenousGroupAffiliated: r.IndigenousGroupAffiliated,
		MigratedWithinPeriod:      r.MigratedWithinPeriod,
	}
}

// AddMemberRequest is the request body for attaching a resident to a household
type AddMemberRequest struct {
	ResidentID         string `json:"resident_id"`
	RelationshipToHead string `json:"relationship_to_head"`
	FamilyPosition     string `json:"family_position,omitempty"`
	FamilyNumber       int    `json:"family_number,omitempty"`
}

// Validate validates the request body
func (r *AddMemberRequest) Validate() error {
	if r.ResidentID == "" {
		return errors.New("resident_id is required")
	}
	if strings.TrimSpace(r.RelationshipToHead) == "" {
		return errors.New("relationship_to_head is required")
	}
	if r.FamilyNumber < 0 {
		return errors.New("family_number must not be negative")
	}
	return nil
}

// ToInput converts the request into a registrar input
func (r *AddMemberRequest) ToInput(householdExternalID string) registrar.AddMemberInput {
	return registrar.AddMemberInput{
		HouseholdExternalID: householdExternalID,
		ResidentExternalID:  r.ResidentID,
		RelationshipToHead:  r.RelationshipToHead,
		FamilyPosition:      r.FamilyPosition,
		FamilyNumber:        r.FamilyNumber,
	}
}
