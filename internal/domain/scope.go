package domain

import (
	"fmt"
	"strings"
)

// ScopeLevel is the breadth of a principal's geographic assignment
type ScopeLevel string

const (
	ScopeLevelBarangay ScopeLevel = "barangay"
	ScopeLevelCity     ScopeLevel = "city"
	ScopeLevelProvince ScopeLevel = "province"
	ScopeLevelRegion   ScopeLevel = "region"
	ScopeLevelNational ScopeLevel = "national"
)

var scopeCodeLenByLevel = map[ScopeLevel]int{
	ScopeLevelBarangay: GeoCodeLenBarangay,
	ScopeLevelCity:     GeoCodeLenCity,
	ScopeLevelProvince: GeoCodeLenProvince,
	ScopeLevelRegion:   GeoCodeLenRegion,
	ScopeLevelNational: 0,
}

// Scope is the requesting principal's geographic assignment. It is supplied by
// the surrounding identity layer and injected as request context; the core only
// intersects it with record locations. Records outside scope are invisible, not
// access-denied.
type Scope struct {
	Level ScopeLevel `json:"level"`
	Code  GeoCode    `json:"code"`
}

// NationalScope covers every record
func NationalScope() Scope {
	return Scope{Level: ScopeLevelNational}
}

// Validate checks level/code consistency
func (s Scope) Validate() error {
	want, ok := scopeCodeLenByLevel[s.Level]
	if !ok {
		return fmt.Errorf("unknown scope level %q: %w", s.Level, ErrInvalidArgument)
	}
	if s.Level == ScopeLevelNational {
		if s.Code != "" {
			return fmt.Errorf("national scope must not carry a code: %w", ErrInvalidArgument)
		}
		return nil
	}
	if !isDigits(string(s.Code)) || len(s.Code) != want {
		return fmt.Errorf("scope code %q does not match level %s: %w", s.Code, s.Level, ErrInvalidArgument)
	}
	return nil
}

// Contains reports whether a barangay-level record location falls inside the scope.
// Geographic codes encode ancestry by prefix, so containment is prefix matching.
func (s Scope) Contains(barangayCode GeoCode) bool {
	if s.Level == ScopeLevelNational {
		return true
	}
	return strings.HasPrefix(string(barangayCode), string(s.Code))
}

// Prefix returns the code prefix records must carry to be visible, empty for national
func (s Scope) Prefix() string {
	if s.Level == ScopeLevelNational {
		return ""
	}
	return string(s.Code)
}

// Principal is the authenticated caller as supplied by the external
// identity/session provider. The ID is opaque and used only for audit
// attribution.
type Principal struct {
	ID    string `json:"principal_id"`
	Scope Scope  `json:"scope"`
}
