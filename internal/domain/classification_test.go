package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyIncome(t *testing.T) {
	dec := func(s string) *decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", s, err)
		}
		return &d
	}

	tests := []struct {
		name   string
		income *decimal.Decimal
		want   IncomeClass
	}{
		{"nil income is not determined", nil, IncomeClassNotDetermined},
		{"zero is poor", dec("0"), IncomeClassPoor},
		{"just below first boundary", dec("9519.99"), IncomeClassPoor},
		{"exactly at first boundary is low income", dec("9520"), IncomeClassLowIncome},
		{"just below lower middle", dec("21193.99"), IncomeClassLowIncome},
		{"lower middle lower bound", dec("21194"), IncomeClassLowerMiddle},
		{"middle lower bound", dec("43828"), IncomeClassMiddle},
		{"upper middle lower bound", dec("76669"), IncomeClassUpperMiddle},
		{"high income lower bound", dec("131484"), IncomeClassHighIncome},
		{"just below rich", dec("219139.99"), IncomeClassHighIncome},
		{"exactly at top boundary is rich", dec("219140"), IncomeClassRich},
		{"far above top boundary", dec("1000000"), IncomeClassRich},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIncome(tt.income))
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthdate time.Time
		want      int
	}{
		{"birthday today", time.Date(1965, 6, 15, 0, 0, 0, 0, time.UTC), 60},
		{"birthday tomorrow", time.Date(1965, 6, 16, 0, 0, 0, 0, time.UTC), 59},
		{"birthday yesterday", time.Date(1965, 6, 14, 0, 0, 0, 0, time.UTC), 60},
		{"born this year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birthdate, now))
		})
	}
}

func TestComputeSectoralFlags(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	birthdate := func(age int) time.Time {
		return now.AddDate(-age, 0, 0)
	}

	t.Run("senior citizen exactly at 60", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:        birthdate(60),
			EmploymentStatus: EmploymentStatusRetired,
		}, now)
		assert.True(t, flags.SeniorCitizen)
	})

	t.Run("one day younger than 60 is not senior", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:        birthdate(60).AddDate(0, 0, 1),
			EmploymentStatus: EmploymentStatusRetired,
		}, now)
		assert.False(t, flags.SeniorCitizen)
	})

	t.Run("out of school youth", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:        birthdate(18),
			EmploymentStatus: EmploymentStatusUnemployed,
		}, now)
		assert.True(t, flags.OutOfSchoolYouth)
	})

	t.Run("enrolled youth is not out of school", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:         birthdate(18),
			EmploymentStatus:  EmploymentStatusStudent,
			CurrentlyEnrolled: true,
		}, now)
		assert.False(t, flags.OutOfSchoolYouth)
	})

	t.Run("employed youth is not out of school", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:        birthdate(20),
			EmploymentStatus: EmploymentStatusEmployed,
		}, now)
		assert.False(t, flags.OutOfSchoolYouth)
		assert.True(t, flags.LaborForce)
	})

	t.Run("graduate youth is not out of school", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:                birthdate(22),
			EmploymentStatus:         EmploymentStatusUnemployed,
			GraduatedBeyondSecondary: true,
		}, now)
		assert.False(t, flags.OutOfSchoolYouth)
	})

	t.Run("age bounds for out of school youth", func(t *testing.T) {
		for age, want := range map[int]bool{14: false, 15: true, 24: true, 25: false} {
			flags := ComputeSectoralFlags(SectoralInput{
				Birthdate:        birthdate(age),
				EmploymentStatus: EmploymentStatusUnemployed,
			}, now)
			assert.Equal(t, want, flags.OutOfSchoolYouth, "age %d", age)
		}
	})

	t.Run("pass-through flags come from their source fields", func(t *testing.T) {
		flags := ComputeSectoralFlags(SectoralInput{
			Birthdate:                 birthdate(35),
			EmploymentStatus:          EmploymentStatusEmployed,
			RegisteredPWD:             true,
			RegisteredSoloParent:      true,
			OverseasWorker:            true,
			IndigenousGroupAffiliated: true,
			MigratedWithinPeriod:      true,
		}, now)
		assert.True(t, flags.PWD)
		assert.True(t, flags.SoloParent)
		assert.True(t, flags.OFW)
		assert.True(t, flags.Indigenous)
		assert.True(t, flags.Migrant)
	})
}
