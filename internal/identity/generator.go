package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
)

// Location is the caller-supplied placement of a new household
type Location struct {
	BarangayCode    domain.GeoCode
	SubdivisionName *string
	StreetName      *string
	HouseNumber     string
}

// Assignment is a generated household code with the sub-barangay rows it was
// composed from
type Assignment struct {
	Code          domain.HouseholdCode
	SubdivisionID *uint64
	StreetID      *uint64
}

// Generator builds hierarchical household codes. The code layout
// RRPPMMBBB-SSSS-TTTT-HHHH is an externally visible artifact and must stay
// byte-for-byte stable.
//
//go:generate mockgen -source=generator.go -destination=../mocks/identity_generator.go -package=mocks -mock_names=Generator=MockGenerator
type Generator interface {
	// Generate assigns a household code for the location. Subdivision and
	// street names seen for the first time draw the next sequence number for
	// their barangay; repeated names reuse the number already assigned, so
	// identical inputs always produce identical codes. The sub-barangay rows
	// are allocated through tx so they commit and roll back with the
	// registration that needed them.
	Generate(ctx context.Context, tx store.Store, loc Location) (*Assignment, error)
}

type generator struct{}

// NewGenerator creates a household code generator
func NewGenerator() Generator {
	return &generator{}
}

func (g *generator) Generate(ctx context.Context, tx store.Store, loc Location) (*Assignment, error) {
	if level, err := loc.BarangayCode.Level(); err != nil {
		return nil, err
	} else if level != domain.GeoLevelBarangay {
		return nil, fmt.Errorf("%w: code %q is a %s code, not a barangay", domain.ErrInvalidArgument, loc.BarangayCode, level)
	}

	node, err := tx.GetGeoNode(ctx, loc.BarangayCode)
	if err != nil {
		return nil, err
	}
	if node == nil || !node.Active {
		return nil, fmt.Errorf("%w: unknown barangay code %q", domain.ErrInvalidArgument, loc.BarangayCode)
	}

	houseSegment, err := houseNumberSegment(loc.HouseNumber)
	if err != nil {
		return nil, err
	}

	assignment := &Assignment{}
	subdivisionSeq := 0
	if name := normalizeName(loc.SubdivisionName); name != "" {
		sub, err := tx.GetOrCreateSubdivision(ctx, loc.BarangayCode, name)
		if err != nil {
			return nil, err
		}
		assignment.SubdivisionID = &sub.ID
		subdivisionSeq = sub.Seq
	}

	streetSeq := 0
	if name := normalizeName(loc.StreetName); name != "" {
		street, err := tx.GetOrCreateStreet(ctx, loc.BarangayCode, assignment.SubdivisionID, name)
		if err != nil {
			return nil, err
		}
		assignment.StreetID = &street.ID
		streetSeq = street.Seq
	}

	assignment.Code = domain.HouseholdCode(fmt.Sprintf("%s-%04d-%04d-%s",
		loc.BarangayCode, subdivisionSeq, streetSeq, houseSegment))
	return assignment, nil
}

func normalizeName(name *string) string {
	if name == nil {
		return ""
	}
	return strings.TrimSpace(*name)
}

// houseNumberSegment reduces a house number literal to its fixed-width digit
// form: non-digits dropped, zero-padded on the left, overlong values keep
// their last four digits.
func houseNumberSegment(houseNumber string) (string, error) {
	digits := make([]rune, 0, len(houseNumber))
	for _, r := range houseNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return "", fmt.Errorf("%w: house number %q carries no digits", domain.ErrInvalidArgument, houseNumber)
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return strings.Repeat("0", 4-len(digits)) + string(digits), nil
}
