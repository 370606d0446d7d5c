package deriver

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

// Warning reports a derivation that failed without failing the write. The
// affected field keeps its prior value.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ResidentPlaintext carries the decrypted identity values of a resident write.
// The resolver needs them to compose the encrypted full name without another
// decrypt round trip.
type ResidentPlaintext struct {
	GivenName  string
	MiddleName string
	FamilyName string
}

// Resolver populates derived fields after a write. Hooks are idempotent:
// re-running one on unchanged input leaves the record byte-identical except
// for ciphertext, which re-seals under a fresh nonce.
//
// Hooks run inside the write's transaction and read through the tx store they
// are handed, so rows the same transaction just created (memberships, streets,
// subdivisions) are visible to the derivation.
//
//go:generate mockgen -source=deriver.go -destination=../mocks/deriver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// OnHouseholdWrite re-derives address, name, aggregate counts, and income
	// class on the household in place
	OnHouseholdWrite(ctx context.Context, tx store.Store, household *schema.Household, access vault.AccessContext) ([]Warning, error)

	// OnResidentWrite re-derives full name, age, resolved names, and sectoral
	// flags on the resident in place
	OnResidentWrite(ctx context.Context, tx store.Store, resident *schema.Resident, plain ResidentPlaintext) ([]Warning, error)
}

type resolver struct {
	ref   reference.Service
	vault vault.Vault
	clock adapter.Clock
}

// NewResolver creates a derived-field resolver
func NewResolver(ref reference.Service, v vault.Vault, clock adapter.Clock) Resolver {
	return &resolver{ref: ref, vault: v, clock: clock}
}

func (r *resolver) OnHouseholdWrite(ctx context.Context, tx store.Store, household *schema.Household, access vault.AccessContext) ([]Warning, error) {
	var warnings []Warning

	if warning := r.deriveAddress(ctx, tx, household); warning != nil {
		warnings = append(warnings, *warning)
	}
	if warning := r.deriveHouseholdName(ctx, tx, household, access); warning != nil {
		warnings = append(warnings, *warning)
	}

	stats, err := tx.GetHouseholdMemberStats(ctx, household.ID)
	if err != nil {
		return warnings, err
	}
	household.MemberCount = stats.MemberCount
	household.FamilyCount = stats.FamilyCount
	household.MigrantCount = stats.MigrantCount

	household.IncomeClass = domain.ClassifyIncome(household.MonthlyIncome)

	return warnings, nil
}

// deriveAddress joins house number, street, subdivision, barangay, city,
// province, region. Empty segments are skipped; independent cities have no
// province segment to begin with.
func (r *resolver) deriveAddress(ctx context.Context, tx store.Store, household *schema.Household) *Warning {
	path, err := r.ref.ResolveGeo(ctx, domain.GeoCode(household.BarangayCode))
	if err != nil {
		return warn("address", "geography path unresolved: %v", err)
	}

	segments := make([]string, 0, 8)
	if household.HouseNumber != "" {
		segments = append(segments, household.HouseNumber)
	}

	if household.StreetID != nil {
		street, err := tx.GetStreet(ctx, *household.StreetID)
		if err != nil || street == nil {
			return warn("address", "street %d unresolved", *household.StreetID)
		}
		segments = append(segments, street.Name)
	}
	if household.SubdivisionID != nil {
		sub, err := tx.GetSubdivision(ctx, *household.SubdivisionID)
		if err != nil || sub == nil {
			return warn("address", "subdivision %d unresolved", *household.SubdivisionID)
		}
		segments = append(segments, sub.Name)
	}

	// Path is most general first; the address reads most specific first
	for i := len(path) - 1; i >= 0; i-- {
		name := path[i].Name
		if name == "" {
			continue
		}
		if path[i].Level == string(domain.GeoLevelBarangay) {
			name = "Barangay " + name
		}
		segments = append(segments, name)
	}

	address := strings.Join(segments, ", ")
	household.Address = &address
	return nil
}

// deriveHouseholdName sets "<head family name> Residence". An unset or
// unresolvable head leaves the name as is.
func (r *resolver) deriveHouseholdName(ctx context.Context, tx store.Store, household *schema.Household, access vault.AccessContext) *Warning {
	if household.HeadResidentID == nil {
		household.Name = nil
		return nil
	}

	head, err := tx.GetResidentByID(ctx, *household.HeadResidentID)
	if err != nil || head == nil {
		return warn("name", "head resident %d unresolved", *household.HeadResidentID)
	}

	access.ResidentID = head.ID
	access.Field = "family_name"
	familyName, err := r.vault.Decrypt(ctx, tx, head.FamilyNameCipher, head.KeyVersion, access)
	if err != nil {
		return warn("name", "head family name undecryptable: %v", err)
	}

	name := familyName + " Residence"
	household.Name = &name
	return nil
}

func (r *resolver) OnResidentWrite(ctx context.Context, tx store.Store, resident *schema.Resident, plain ResidentPlaintext) ([]Warning, error) {
	var warnings []Warning

	fullName := composeFullName(plain)
	cipher, version, err := r.vault.Encrypt(ctx, fullName)
	if err != nil {
		// The full name is mandatory derived state; without a usable key the
		// write cannot proceed
		return warnings, err
	}
	resident.FullNameCipher = cipher
	resident.KeyVersion = version

	now := r.clock.Now()
	resident.Age = domain.Age(resident.Birthdate, now)

	if resident.BirthPlaceCode != nil {
		path, err := r.ref.ResolveGeo(ctx, domain.GeoCode(*resident.BirthPlaceCode))
		if err != nil {
			warnings = append(warnings, *warn("birth_place_name", "geography code %q unresolved: %v", *resident.BirthPlaceCode, err))
		} else {
			names := make([]string, 0, len(path))
			for i := len(path) - 1; i >= 0; i-- {
				names = append(names, path[i].Name)
			}
			birthPlace := strings.Join(names, ", ")
			resident.BirthPlaceName = &birthPlace
		}
	} else {
		resident.BirthPlaceName = nil
	}

	if resident.OccupationCode != nil {
		node, err := tx.GetOccupationNode(ctx, domain.OccupationCode(*resident.OccupationCode))
		if err != nil || node == nil {
			warnings = append(warnings, *warn("employment_title", "occupation code %q unresolved", *resident.OccupationCode))
		} else {
			resident.EmploymentTitle = &node.Name
		}
	} else {
		resident.EmploymentTitle = nil
	}

	flags := domain.ComputeSectoralFlags(domain.SectoralInput{
		Birthdate:                resident.Birthdate,
		EmploymentStatus:         resident.EmploymentStatus,
		CurrentlyEnrolled:        resident.CurrentlyEnrolled,
		GraduatedBeyondSecondary: resident.GraduatedBeyondSecondary,
	}, now)
	resident.SeniorCitizen = flags.SeniorCitizen
	resident.OutOfSchoolYouth = flags.OutOfSchoolYouth
	resident.LaborForce = flags.LaborForce

	for _, warning := range warnings {
		logger.WarnCtx(ctx, "derivation skipped",
			zap.String("field", warning.Field),
			zap.String("reason", warning.Message))
	}
	return warnings, nil
}

// composeFullName joins the name parts with single spaces, skipping a missing
// middle name
func composeFullName(plain ResidentPlaintext) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{plain.GivenName, plain.MiddleName, plain.FamilyName} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, " ")
}

func warn(field, format string, args ...interface{}) *Warning {
	return &Warning{Field: field, Message: fmt.Sprintf(format, args...)}
}
