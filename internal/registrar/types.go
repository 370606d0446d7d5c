package registrar

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store/schema"
)

// CreateHouseholdInput registers a new household
type CreateHouseholdInput struct {
	BarangayCode    domain.GeoCode
	SubdivisionName *string
	StreetName      *string
	HouseNumber     string
	MonthlyIncome   *decimal.Decimal
}

// UpdateHouseholdInput mutates a household. Nil fields stay unchanged; the
// code and location are immutable after registration.
type UpdateHouseholdInput struct {
	MonthlyIncome          *decimal.Decimal
	ClearIncome            bool
	HeadResidentExternalID *string
}

// HouseholdView is the externally visible household projection
type HouseholdView struct {
	ExternalID    string           `json:"id"`
	Code          string           `json:"code"`
	BarangayCode  string           `json:"barangay_code"`
	Name          *string          `json:"name,omitempty"`
	Address       *string          `json:"address,omitempty"`
	HouseNumber   string           `json:"house_number"`
	MemberCount   int              `json:"member_count"`
	FamilyCount   int              `json:"family_count"`
	MigrantCount  int              `json:"migrant_count"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income,omitempty"`
	IncomeClass   string           `json:"income_class"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// HouseholdResult pairs a household view with non-fatal derivation warnings
type HouseholdResult struct {
	Household HouseholdView     `json:"household"`
	Warnings  []deriver.Warning `json:"warnings,omitempty"`
}

// ResidentInput carries the full resident payload. Writes always replace the
// whole personal-identity set so hashes and the derived full name stay in step
// with one key version.
type ResidentInput struct {
	BarangayCode domain.GeoCode

	GivenName    string
	MiddleName   string
	FamilyName   string
	GovernmentID string
	Mobile       string
	Email        string
	MotherMaiden string

	Birthdate        time.Time
	Sex              domain.Sex
	CivilStatus      domain.CivilStatus
	EducationLevel   string
	EmploymentStatus domain.EmploymentStatus
	OccupationCode   *string
	BirthPlaceCode   *string
	BloodType        string
	Ethnicity        string
	Religion         string

	CurrentlyEnrolled         bool
	GraduatedBeyondSecondary  bool
	RegisteredPWD             bool
	RegisteredSoloParent      bool
	OverseasWorker            bool
	IndigenousGroupAffiliated bool
	MigratedWithinPeriod      bool
}

// ResidentView is the externally visible resident projection. Identity fields
// hold plaintext or masked values depending on the requested read mode.
type ResidentView struct {
	ExternalID string `json:"id"`

	GivenName    string `json:"given_name"`
	MiddleName   string `json:"middle_name,omitempty"`
	FamilyName   string `json:"family_name"`
	FullName     string `json:"full_name"`
	GovernmentID string `json:"government_id,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Email        string `json:"email,omitempty"`
	MotherMaiden string `json:"mother_maiden,omitempty"`

	Birthdate        time.Time `json:"birthdate"`
	Age              int       `json:"age"`
	Sex              string    `json:"sex"`
	CivilStatus      string    `json:"civil_status"`
	EducationLevel   string    `json:"education_level,omitempty"`
	EmploymentStatus string    `json:"employment_status"`
	OccupationCode   *string   `json:"occupation_code,omitempty"`
	EmploymentTitle  *string   `json:"employment_title,omitempty"`
	BirthPlaceCode   *string   `json:"birth_place_code,omitempty"`
	BirthPlaceName   *string   `json:"birth_place_name,omitempty"`
	BloodType        string    `json:"blood_type,omitempty"`
	Ethnicity        string    `json:"ethnicity,omitempty"`
	Religion         string    `json:"religion,omitempty"`

	Sectoral domain.SectoralFlags `json:"sectoral"`

	BarangayCode string    `json:"barangay_code"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ResidentResult pairs a resident view with non-fatal derivation warnings
type ResidentResult struct {
	Resident ResidentView      `json:"resident"`
	Warnings []deriver.Warning `json:"warnings,omitempty"`
}

// AddMemberInput attaches a resident to a household
type AddMemberInput struct {
	HouseholdExternalID string
	ResidentExternalID  string
	RelationshipToHead  string
	FamilyPosition      string
	FamilyNumber        int
}

// ChangeView is one journal row as exposed through the API
type ChangeView struct {
	SubjectType  string    `json:"subject_type"`
	SubjectID    string    `json:"subject_id"`
	BarangayCode string    `json:"barangay_code"`
	Operation    string    `json:"operation"`
	PrincipalID  string    `json:"principal_id"`
	ChangedAt    time.Time `json:"changed_at"`
}

func householdView(h *schema.Household) HouseholdView {
	return HouseholdView{
		ExternalID:    h.ExternalID,
		Code:          h.Code,
		BarangayCode:  h.BarangayCode,
		Name:          h.Name,
		Address:       h.Address,
		HouseNumber:   h.HouseNumber,
		MemberCount:   h.MemberCount,
		FamilyCount:   h.FamilyCount,
		MigrantCount:  h.MigrantCount,
		MonthlyIncome: h.MonthlyIncome,
		IncomeClass:   string(h.IncomeClass),
		Active:        h.Active,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}
