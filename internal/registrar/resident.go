package registrar

import (
	"context"
	"fmt"
	"strings"

	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

// residentIdentity holds the plaintext identity values of a resident, either
// supplied by the caller on a write or recovered through the vault on a read
type residentIdentity struct {
	GivenName    string
	MiddleName   string
	FamilyName   string
	FullName     string
	GovernmentID string
	Mobile       string
	Email        string
	MotherMaiden string
}

func (s *service) CreateResident(ctx context.Context, principal domain.Principal, in ResidentInput) (*ResidentResult, error) {
	if err := requireInScope(principal, in.BarangayCode); err != nil {
		return nil, err
	}
	if err := validateResidentInput(in); err != nil {
		return nil, err
	}

	var result *ResidentResult
	err := s.withRetry(ctx, func() error {
		return s.store.Transaction(ctx, func(tx store.Store) error {
			now := s.clock.Now()
			resident := &schema.Resident{
				ExternalID:   s.newID(),
				BarangayCode: string(in.BarangayCode),
				Active:       true,
				CreatedBy:    principal.ID,
				UpdatedBy:    principal.ID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			applyDemographics(resident, in)

			plain, err := s.sealIdentity(ctx, resident, in)
			if err != nil {
				return err
			}
			if err := tx.CreateResident(ctx, resident); err != nil {
				return err
			}

			warnings, err := s.finishResidentWrite(ctx, tx, principal, resident, plain, "create")
			if err != nil {
				return err
			}
			result = &ResidentResult{Resident: s.residentViewFromInput(resident, in), Warnings: warnings}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.publishResidentChange(ctx, principal, result.Resident, "create")
	return result, nil
}

func (s *service) UpdateResident(ctx context.Context, principal domain.Principal, externalID string, in ResidentInput) (*ResidentResult, error) {
	if err := validateResidentInput(in); err != nil {
		return nil, err
	}

	var result *ResidentResult
	err := s.withRetry(ctx, func() error {
		return s.store.Transaction(ctx, func(tx store.Store) error {
			resident, err := s.loadResident(ctx, tx, principal, externalID)
			if err != nil {
				return err
			}
			if string(in.BarangayCode) != resident.BarangayCode {
				return fmt.Errorf("%w: the home barangay of resident %s is immutable", domain.ErrInvalidArgument, externalID)
			}
			applyDemographics(resident, in)

			plain, err := s.sealIdentity(ctx, resident, in)
			if err != nil {
				return err
			}
			resident.UpdatedBy = principal.ID

			warnings, err := s.finishResidentWrite(ctx, tx, principal, resident, plain, "update")
			if err != nil {
				return err
			}
			result = &ResidentResult{Resident: s.residentViewFromInput(resident, in), Warnings: warnings}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.publishResidentChange(ctx, principal, result.Resident, "update")
	return result, nil
}

func (s *service) GetResident(ctx context.Context, principal domain.Principal, externalID string, mode domain.ReadMode) (*ResidentView, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown read mode %q", domain.ErrInvalidArgument, mode)
	}

	resident, err := s.store.GetResidentByExternalID(ctx, externalID, principal.Scope)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, fmt.Errorf("%w: resident %s", domain.ErrNotFound, externalID)
	}

	identity, err := s.openIdentity(ctx, principal, resident)
	if err != nil {
		return nil, err
	}
	if mode == domain.ReadModeMasked {
		identity = maskIdentity(identity)
	}

	view := residentView(resident, identity)
	return &view, nil
}

func (s *service) FindResidents(ctx context.Context, principal domain.Principal, field, value string) ([]ResidentView, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: search value is required", domain.ErrInvalidArgument)
	}

	activeVersion, err := s.vault.ActiveVersion(ctx)
	if err != nil {
		return nil, err
	}

	// Rows mid-rekey still carry hashes from the previous version, so the
	// search checks both until the migration catches up
	versions := []int{activeVersion}
	if activeVersion > 1 {
		versions = append(versions, activeVersion-1)
	}

	seen := make(map[string]struct{})
	views := make([]ResidentView, 0)
	for _, version := range versions {
		hash, err := s.vault.SearchHash(ctx, value, version)
		if err != nil {
			return nil, err
		}
		matches, err := s.store.FindResidentsByHash(ctx, field, hash, principal.Scope)
		if err != nil {
			return nil, err
		}
		for i := range matches {
			resident := &matches[i]
			if _, ok := seen[resident.ExternalID]; ok {
				continue
			}
			seen[resident.ExternalID] = struct{}{}

			identity, err := s.openIdentity(ctx, principal, resident)
			if err != nil {
				return nil, err
			}
			views = append(views, residentView(resident, maskIdentity(identity)))
		}
	}
	return views, nil
}

func (s *service) DeactivateResident(ctx context.Context, principal domain.Principal, externalID string) error {
	var view *ResidentView
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		resident, err := s.loadResident(ctx, tx, principal, externalID)
		if err != nil {
			return err
		}

		membership, err := tx.GetActiveMembership(ctx, resident.ID)
		if err != nil {
			return err
		}
		if membership != nil {
			if err := tx.EndMembership(ctx, membership.ID, s.clock.Now()); err != nil {
				return err
			}
			if err := s.departHousehold(ctx, tx, principal, membership.HouseholdID, resident.ID); err != nil {
				return err
			}
		}

		resident.Active = false
		resident.UpdatedBy = principal.ID
		if err := tx.UpdateResident(ctx, resident); err != nil {
			return err
		}
		if err := s.journal(ctx, tx, principal, domain.ChangeSubjectResident, resident.ExternalID, resident.BarangayCode, "deactivate", nil); err != nil {
			return err
		}

		v := residentView(resident, residentIdentity{})
		view = &v
		return nil
	})
	if err != nil {
		return err
	}

	s.publishResidentChange(ctx, principal, *view, "deactivate")
	return nil
}

// loadResident fetches a resident for mutation, enforcing scope
func (s *service) loadResident(ctx context.Context, tx store.Store, principal domain.Principal, externalID string) (*schema.Resident, error) {
	resident, err := tx.GetResidentByExternalID(ctx, externalID, principal.Scope)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, fmt.Errorf("%w: resident %s", domain.ErrNotFound, externalID)
	}
	return resident, nil
}

// departHousehold re-derives a household after one of its members leaves,
// clearing headship when the departing resident held it
func (s *service) departHousehold(ctx context.Context, tx store.Store, principal domain.Principal, householdID, residentID uint64) error {
	household, err := tx.GetHouseholdByID(ctx, householdID)
	if err != nil {
		return err
	}
	if household == nil {
		return fmt.Errorf("%w: household %d", domain.ErrNotFound, householdID)
	}
	if household.HeadResidentID != nil && *household.HeadResidentID == residentID {
		household.HeadResidentID = nil
	}
	household.UpdatedBy = principal.ID
	_, err = s.finishHouseholdWrite(ctx, tx, principal, household, "update")
	return err
}

// finishResidentWrite runs derivation, persists the resident, and journals the
// change
func (s *service) finishResidentWrite(ctx context.Context, tx store.Store, principal domain.Principal, resident *schema.Resident, plain deriver.ResidentPlaintext, operation string) ([]deriver.Warning, error) {
	warnings, err := s.resolver.OnResidentWrite(ctx, tx, resident, plain)
	if err != nil {
		return nil, err
	}
	if err := tx.UpdateResident(ctx, resident); err != nil {
		return nil, err
	}
	if err := s.journal(ctx, tx, principal, domain.ChangeSubjectResident, resident.ExternalID, resident.BarangayCode, operation, warnings); err != nil {
		return nil, err
	}
	return warnings, nil
}

// sealIdentity encrypts the full identity set and recomputes the companion
// search hashes, all under one key version. A rotation landing between two
// field encryptions splits the versions; the write then restarts so every
// column on the record stays on a single version.
func (s *service) sealIdentity(ctx context.Context, resident *schema.Resident, in ResidentInput) (deriver.ResidentPlaintext, error) {
	version := 0
	seal := func(plaintext string) ([]byte, error) {
		ciphertext, v, err := s.vault.Encrypt(ctx, plaintext)
		if err != nil {
			return nil, err
		}
		if version == 0 {
			version = v
		} else if v != version {
			return nil, fmt.Errorf("%w: encryption key rotated during write", domain.ErrConcurrencyConflict)
		}
		return ciphertext, nil
	}
	sealOptional := func(plaintext string) ([]byte, string, error) {
		if plaintext == "" {
			return nil, "", nil
		}
		ciphertext, err := seal(plaintext)
		if err != nil {
			return nil, "", err
		}
		hash, err := s.vault.SearchHash(ctx, plaintext, version)
		if err != nil {
			return nil, "", err
		}
		return ciphertext, hash, nil
	}

	given := strings.TrimSpace(in.GivenName)
	middle := strings.TrimSpace(in.MiddleName)
	family := strings.TrimSpace(in.FamilyName)

	var err error
	if resident.GivenNameCipher, resident.GivenNameHash, err = sealOptional(given); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	if resident.MiddleNameCipher, resident.MiddleNameHash, err = sealOptional(middle); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	if resident.FamilyNameCipher, resident.FamilyNameHash, err = sealOptional(family); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	if resident.GovernmentIDCipher, resident.GovernmentIDHash, err = sealOptional(strings.TrimSpace(in.GovernmentID)); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	if resident.MobileCipher, resident.MobileHash, err = sealOptional(strings.TrimSpace(in.Mobile)); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	if resident.EmailCipher, resident.EmailHash, err = sealOptional(strings.TrimSpace(in.Email)); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	if resident.MotherMaidenCipher, resident.MotherMaidenHash, err = sealOptional(strings.TrimSpace(in.MotherMaiden)); err != nil {
		return deriver.ResidentPlaintext{}, err
	}
	resident.KeyVersion = version

	return deriver.ResidentPlaintext{
		GivenName:  given,
		MiddleName: middle,
		FamilyName: family,
	}, nil
}

// openIdentity recovers the plaintext identity set through the vault. Every
// field access is individually audited.
func (s *service) openIdentity(ctx context.Context, principal domain.Principal, resident *schema.Resident) (residentIdentity, error) {
	open := func(ciphertext []byte, field string) (string, error) {
		if len(ciphertext) == 0 {
			return "", nil
		}
		return s.vault.Decrypt(ctx, s.store, ciphertext, resident.KeyVersion, vault.AccessContext{
			PrincipalID: principal.ID,
			ResidentID:  resident.ID,
			Field:       field,
		})
	}

	var identity residentIdentity
	var err error
	if identity.GivenName, err = open(resident.GivenNameCipher, "given_name"); err != nil {
		return residentIdentity{}, err
	}
	if identity.MiddleName, err = open(resident.MiddleNameCipher, "middle_name"); err != nil {
		return residentIdentity{}, err
	}
	if identity.FamilyName, err = open(resident.FamilyNameCipher, "family_name"); err != nil {
		return residentIdentity{}, err
	}
	if identity.FullName, err = open(resident.FullNameCipher, "full_name"); err != nil {
		return residentIdentity{}, err
	}
	if identity.GovernmentID, err = open(resident.GovernmentIDCipher, "government_id"); err != nil {
		return residentIdentity{}, err
	}
	if identity.Mobile, err = open(resident.MobileCipher, "mobile"); err != nil {
		return residentIdentity{}, err
	}
	if identity.Email, err = open(resident.EmailCipher, "email"); err != nil {
		return residentIdentity{}, err
	}
	if identity.MotherMaiden, err = open(resident.MotherMaidenCipher, "mother_maiden"); err != nil {
		return residentIdentity{}, err
	}
	return identity, nil
}

func maskIdentity(identity residentIdentity) residentIdentity {
	return residentIdentity{
		GivenName:    vault.MaskName(identity.GivenName),
		MiddleName:   vault.MaskName(identity.MiddleName),
		FamilyName:   vault.MaskName(identity.FamilyName),
		FullName:     vault.MaskName(identity.FullName),
		GovernmentID: vault.MaskTail(identity.GovernmentID),
		Mobile:       vault.MaskTail(identity.Mobile),
		Email:        vault.MaskEmail(identity.Email),
		MotherMaiden: vault.MaskName(identity.MotherMaiden),
	}
}

func validateResidentInput(in ResidentInput) error {
	if strings.TrimSpace(in.GivenName) == "" {
		return fmt.Errorf("%w: given name is required", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.FamilyName) == "" {
		return fmt.Errorf("%w: family name is required", domain.ErrInvalidArgument)
	}
	if in.Birthdate.IsZero() {
		return fmt.Errorf("%w: birthdate is required", domain.ErrInvalidArgument)
	}
	return nil
}

// applyDemographics copies the non-sensitive payload onto the record
func applyDemographics(resident *schema.Resident, in ResidentInput) {
	resident.Birthdate = in.Birthdate
	resident.Sex = in.Sex
	resident.CivilStatus = in.CivilStatus
	resident.EducationLevel = in.EducationLevel
	resident.EmploymentStatus = in.EmploymentStatus
	resident.OccupationCode = in.OccupationCode
	resident.BirthPlaceCode = in.BirthPlaceCode
	resident.BloodType = in.BloodType
	resident.Ethnicity = in.Ethnicity
	resident.Religion = in.Religion

	resident.CurrentlyEnrolled = in.CurrentlyEnrolled
	resident.GraduatedBeyondSecondary = in.GraduatedBeyondSecondary
	resident.RegisteredPWD = in.RegisteredPWD
	resident.RegisteredSoloParent = in.RegisteredSoloParent
	resident.OverseasWorker = in.OverseasWorker
	resident.IndigenousGroupAffiliated = in.IndigenousGroupAffiliated
	resident.MigratedWithinPeriod = in.MigratedWithinPeriod
}

// residentViewFromInput builds the write-result view from the caller's own
// plaintext, avoiding a decrypt round trip right after encryption
func (s *service) residentViewFromInput(resident *schema.Resident, in ResidentInput) ResidentView {
	given := strings.TrimSpace(in.GivenName)
	middle := strings.TrimSpace(in.MiddleName)
	family := strings.TrimSpace(in.FamilyName)
	parts := make([]string, 0, 3)
	for _, part := range []string{given, middle, family} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return residentView(resident, residentIdentity{
		GivenName:    given,
		MiddleName:   middle,
		FamilyName:   family,
		FullName:     strings.Join(parts, " "),
		GovernmentID: strings.TrimSpace(in.GovernmentID),
		Mobile:       strings.TrimSpace(in.Mobile),
		Email:        strings.TrimSpace(in.Email),
		MotherMaiden: strings.TrimSpace(in.MotherMaiden),
	})
}

func residentView(r *schema.Resident, identity residentIdentity) ResidentView {
	return ResidentView{
		ExternalID: r.ExternalID,

		GivenName:    identity.GivenName,
		MiddleName:   identity.MiddleName,
		FamilyName:   identity.FamilyName,
		FullName:     identity.FullName,
		GovernmentID: identity.GovernmentID,
		Mobile:       identity.Mobile,
		Email:        identity.Email,
		MotherMaiden: identity.MotherMaiden,

		Birthdate:        r.Birthdate,
		Age:              r.Age,
		Sex:              string(r.Sex),
		CivilStatus:      string(r.CivilStatus),
		EducationLevel:   r.EducationLevel,
		EmploymentStatus: string(r.EmploymentStatus),
		OccupationCode:   r.OccupationCode,
		EmploymentTitle:  r.EmploymentTitle,
		BirthPlaceCode:   r.BirthPlaceCode,
		BirthPlaceName:   r.BirthPlaceName,
		BloodType:        r.BloodType,
		Ethnicity:        r.Ethnicity,
		Religion:         r.Religion,

		Sectoral: domain.SectoralFlags{
			SeniorCitizen:    r.SeniorCitizen,
			OutOfSchoolYouth: r.OutOfSchoolYouth,
			LaborForce:       r.LaborForce,
			PWD:              r.RegisteredPWD,
			SoloParent:       r.RegisteredSoloParent,
			OFW:              r.OverseasWorker,
			Indigenous:       r.IndigenousGroupAffiliated,
			Migrant:          r.MigratedWithinPeriod,
		},

		BarangayCode: r.BarangayCode,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (s *service) publishResidentChange(ctx context.Context, principal domain.Principal, view ResidentView, operation string) {
	s.publishChange(ctx, &domain.ChangeEvent{
		EventID:      s.newID(),
		Subject:      domain.ChangeSubjectResident,
		SubjectID:    view.ExternalID,
		BarangayCode: domain.GeoCode(view.BarangayCode),
		Operation:    operation,
		PrincipalID:  principal.ID,
		Timestamp:    s.clock.Now(),
	})
}
