package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeValidate(t *testing.T) {
	tests := []struct {
		name    string
		scope   Scope
		wantErr bool
	}{
		{"barangay scope", Scope{Level: ScopeLevelBarangay, Code: "137404001"}, false},
		{"city scope", Scope{Level: ScopeLevelCity, Code: "137404"}, false},
		{"province scope", Scope{Level: ScopeLevelProvince, Code: "1374"}, false},
		{"region scope", Scope{Level: ScopeLevelRegion, Code: "13"}, false},
		{"national scope", Scope{Level: ScopeLevelNational}, false},
		{"national with code", Scope{Level: ScopeLevelNational, Code: "13"}, true},
		{"city code on barangay level", Scope{Level: ScopeLevelBarangay, Code: "137404"}, true},
		{"non-digit code", Scope{Level: ScopeLevelCity, Code: "1374a4"}, true},
		{"unknown level", Scope{Level: "galaxy", Code: "13"}, true},
		{"empty level", Scope{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scope.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScopeContains(t *testing.T) {
	barangay := GeoCode("137404001")

	tests := []struct {
		name  string
		scope Scope
		want  bool
	}{
		{"own barangay", Scope{Level: ScopeLevelBarangay, Code: "137404001"}, true},
		{"sibling barangay", Scope{Level: ScopeLevelBarangay, Code: "137404002"}, false},
		{"parent city", Scope{Level: ScopeLevelCity, Code: "137404"}, true},
		{"other city", Scope{Level: ScopeLevelCity, Code: "137405"}, false},
		{"parent province", Scope{Level: ScopeLevelProvince, Code: "1374"}, true},
		{"parent region", Scope{Level: ScopeLevelRegion, Code: "13"}, true},
		{"other region", Scope{Level: ScopeLevelRegion, Code: "04"}, false},
		{"national", NationalScope(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scope.Contains(barangay))
		})
	}
}

func TestScopePrefix(t *testing.T) {
	assert.Equal(t, "137404", Scope{Level: ScopeLevelCity, Code: "137404"}.Prefix())
	assert.Equal(t, "", NationalScope().Prefix())
}

func TestHouseholdCodeValid(t *testing.T) {
	tests := []struct {
		name string
		code HouseholdCode
		want bool
	}{
		{"canonical", "137404001-0001-0001-0123", true},
		{"no subdivision or street", "137404001-0000-0000-0042", true},
		{"too short", "137404001-001-0001-0123", false},
		{"missing segment", "137404001-0001-0123", false},
		{"letters in sequence", "137404001-00a1-0001-0123", false},
		{"barangay segment wrong width", "13740400-0001-0001-01234", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Valid())
		})
	}
}

func TestHouseholdCodeBarangayCode(t *testing.T) {
	code, err := HouseholdCode("137404001-0001-0001-0123").BarangayCode()
	assert.NoError(t, err)
	assert.Equal(t, GeoCode("137404001"), code)

	_, err = HouseholdCode("badcode").BarangayCode()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
