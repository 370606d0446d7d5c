package domain

import "fmt"

// OccupationLevel identifies a level in the 5-level occupational classification tree
type OccupationLevel string

const (
	OccupationLevelMajor        OccupationLevel = "major"
	OccupationLevelSubMajor     OccupationLevel = "sub_major"
	OccupationLevelMinor        OccupationLevel = "minor"
	OccupationLevelUnit         OccupationLevel = "unit"
	OccupationLevelUnitSubgroup OccupationLevel = "unit_subgroup"
)

// Each occupational level has its own code domain; the code length (1-5 digits)
// selects the level directly, with no prefix stripping.
var occupationLevelByLength = map[int]OccupationLevel{
	1: OccupationLevelMajor,
	2: OccupationLevelSubMajor,
	3: OccupationLevelMinor,
	4: OccupationLevelUnit,
	5: OccupationLevelUnitSubgroup,
}

// OccupationCode is an occupational classification code (1-5 digits)
type OccupationCode string

// Level resolves the classification level encoded by the code length
func (c OccupationCode) Level() (OccupationLevel, error) {
	if !isDigits(string(c)) {
		return "", fmt.Errorf("occupation code %q contains non-digit characters: %w", c, ErrInvalidArgument)
	}
	level, ok := occupationLevelByLength[len(c)]
	if !ok {
		return "", fmt.Errorf("occupation code %q has invalid length %d: %w", c, len(c), ErrInvalidArgument)
	}
	return level, nil
}

// Valid reports whether the code is syntactically well-formed
func (c OccupationCode) Valid() bool {
	_, err := c.Level()
	return err == nil
}
