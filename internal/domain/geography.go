package domain

import (
	"fmt"
)

// GeoLevel identifies a level in the 4-level administrative geography tree
type GeoLevel string

const (
	GeoLevelRegion   GeoLevel = "region"
	GeoLevelProvince GeoLevel = "province"
	GeoLevelCity     GeoLevel = "city"
	GeoLevelBarangay GeoLevel = "barangay"
)

// Geographic codes encode ancestry by prefix. The code length determines the
// level; the mapping is resolved once here rather than branched on at call sites.
const (
	GeoCodeLenRegion   = 2
	GeoCodeLenProvince = 4
	GeoCodeLenCity     = 6
	GeoCodeLenBarangay = 9
)

var geoLevelByLength = map[int]GeoLevel{
	GeoCodeLenRegion:   GeoLevelRegion,
	GeoCodeLenProvince: GeoLevelProvince,
	GeoCodeLenCity:     GeoLevelCity,
	GeoCodeLenBarangay: GeoLevelBarangay,
}

var geoCodeLenByLevel = map[GeoLevel]int{
	GeoLevelRegion:   GeoCodeLenRegion,
	GeoLevelProvince: GeoCodeLenProvince,
	GeoLevelCity:     GeoCodeLenCity,
	GeoLevelBarangay: GeoCodeLenBarangay,
}

// GeoCode is a hierarchical geographic code (e.g. "137404001" for a barangay)
type GeoCode string

// Level resolves the administrative level encoded by the code length.
// A code with an unrecognized length or non-digit characters is syntactically
// invalid and yields ErrInvalidArgument, distinct from an unknown-but-well-formed
// code which resolves to ErrNotFound at lookup time.
func (c GeoCode) Level() (GeoLevel, error) {
	if !isDigits(string(c)) {
		return "", fmt.Errorf("geo code %q contains non-digit characters: %w", c, ErrInvalidArgument)
	}
	level, ok := geoLevelByLength[len(c)]
	if !ok {
		return "", fmt.Errorf("geo code %q has invalid length %d: %w", c, len(c), ErrInvalidArgument)
	}
	return level, nil
}

// Valid reports whether the code is syntactically well-formed
func (c GeoCode) Valid() bool {
	_, err := c.Level()
	return err == nil
}

// AncestorAt returns the ancestor code at the given level by prefix truncation.
// Returns an error when the requested level is below the code's own level.
func (c GeoCode) AncestorAt(level GeoLevel) (GeoCode, error) {
	own, err := c.Level()
	if err != nil {
		return "", err
	}
	want, ok := geoCodeLenByLevel[level]
	if !ok {
		return "", fmt.Errorf("unknown geo level %q: %w", level, ErrInvalidArgument)
	}
	if want > geoCodeLenByLevel[own] {
		return "", fmt.Errorf("code %q at level %s has no ancestor at level %s: %w", c, own, level, ErrInvalidArgument)
	}
	return c[:want], nil
}

// Ancestry returns the code's ancestor chain most-general first, ending with the
// code itself.
func (c GeoCode) Ancestry() ([]GeoCode, error) {
	own, err := c.Level()
	if err != nil {
		return nil, err
	}
	chain := make([]GeoCode, 0, 4)
	for _, level := range []GeoLevel{GeoLevelRegion, GeoLevelProvince, GeoLevelCity, GeoLevelBarangay} {
		chain = append(chain, c[:geoCodeLenByLevel[level]])
		if level == own {
			break
		}
	}
	return chain, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
