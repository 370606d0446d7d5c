package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeClass is a government income bracket derived from monthly household income
type IncomeClass string

const (
	IncomeClassNotDetermined IncomeClass = "not_determined"
	IncomeClassPoor          IncomeClass = "poor"
	IncomeClassLowIncome     IncomeClass = "low_income"
	IncomeClassLowerMiddle   IncomeClass = "lower_middle"
	IncomeClassMiddle        IncomeClass = "middle"
	IncomeClassUpperMiddle   IncomeClass = "upper_middle"
	IncomeClassHighIncome    IncomeClass = "high_income"
	IncomeClassRich          IncomeClass = "rich"
)

// incomeBracket is one ordered bracket; the lower bound is inclusive, the upper
// bound exclusive.
type incomeBracket struct {
	upperBound decimal.Decimal
	class      IncomeClass
}

var incomeBrackets = []incomeBracket{
	{decimal.NewFromInt(9520), IncomeClassPoor},
	{decimal.NewFromInt(21194), IncomeClassLowIncome},
	{decimal.NewFromInt(43828), IncomeClassLowerMiddle},
	{decimal.NewFromInt(76669), IncomeClassMiddle},
	{decimal.NewFromInt(131484), IncomeClassUpperMiddle},
	{decimal.NewFromInt(219140), IncomeClassHighIncome},
}

// ClassifyIncome maps a monthly income to its bracket. A nil income is
// explicitly not determined rather than defaulting into the lowest bracket.
func ClassifyIncome(monthlyIncome *decimal.Decimal) IncomeClass {
	if monthlyIncome == nil {
		return IncomeClassNotDetermined
	}
	for _, bracket := range incomeBrackets {
		if monthlyIncome.LessThan(bracket.upperBound) {
			return bracket.class
		}
	}
	return IncomeClassRich
}

// EmploymentStatus is the authoritative employment categorization of a resident
type EmploymentStatus string

const (
	EmploymentStatusEmployed      EmploymentStatus = "employed"
	EmploymentStatusUnemployed    EmploymentStatus = "unemployed"
	EmploymentStatusSelfEmployed  EmploymentStatus = "self_employed"
	EmploymentStatusStudent       EmploymentStatus = "student"
	EmploymentStatusRetired       EmploymentStatus = "retired"
	EmploymentStatusHomemaker     EmploymentStatus = "homemaker"
	EmploymentStatusNotApplicable EmploymentStatus = "not_applicable"
)

// Employed reports whether the status counts as employment for sectoral rules
func (s EmploymentStatus) Employed() bool {
	return s == EmploymentStatusEmployed || s == EmploymentStatusSelfEmployed
}

const (
	seniorCitizenAge       = 60
	outOfSchoolYouthMinAge = 15
	outOfSchoolYouthMaxAge = 24
	laborForceMinAge       = 15
	laborForceMaxAge       = 64
)

// Age computes completed years between birthdate and now
func Age(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	anniversary := birthdate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// SectoralInput carries the authoritative source fields for sectoral
// classification. Each boolean is sourced from a single dedicated record field,
// never inferred from free text.
type SectoralInput struct {
	Birthdate                 time.Time
	EmploymentStatus          EmploymentStatus
	CurrentlyEnrolled         bool
	GraduatedBeyondSecondary  bool
	RegisteredPWD             bool
	RegisteredSoloParent      bool
	OverseasWorker            bool
	IndigenousGroupAffiliated bool
	MigratedWithinPeriod      bool
}

// SectoralFlags are the derived program-eligibility classifications. They are
// recomputed whenever any input field changes and never hand-edited.
type SectoralFlags struct {
	SeniorCitizen    bool `json:"senior_citizen"`
	OutOfSchoolYouth bool `json:"out_of_school_youth"`
	LaborForce       bool `json:"labor_force"`
	PWD              bool `json:"pwd"`
	SoloParent       bool `json:"solo_parent"`
	OFW              bool `json:"ofw"`
	Indigenous       bool `json:"indigenous"`
	Migrant          bool `json:"migrant"`
}

// ComputeSectoralFlags derives all sectoral flags from their inputs as of now
func ComputeSectoralFlags(in SectoralInput, now time.Time) SectoralFlags {
	age := Age(in.Birthdate, now)
	return SectoralFlags{
		SeniorCitizen: age >= seniorCitizenAge,
		OutOfSchoolYouth: age >= outOfSchoolYouthMinAge && age <= outOfSchoolYouthMaxAge &&
			!in.CurrentlyEnrolled && !in.EmploymentStatus.Employed() && !in.GraduatedBeyondSecondary,
		LaborForce: age >= laborForceMinAge && age <= laborForceMaxAge &&
			in.EmploymentStatus != EmploymentStatusStudent,
		PWD:        in.RegisteredPWD,
		SoloParent: in.RegisteredSoloParent,
		OFW:        in.OverseasWorker,
		Indigenous: in.IndigenousGroupAffiliated,
		Migrant:    in.MigratedWithinPeriod,
	}
}
