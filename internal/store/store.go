package store

import (
	"context"
	"time"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store/schema"
)

// GeoSearchFilter narrows a geography search
type GeoSearchFilter struct {
	Term       string
	Level      *domain.GeoLevel
	ParentCode *string
	Limit      int
	Offset     uint64
}

// OccupationSearchFilter narrows an occupation search
type OccupationSearchFilter struct {
	Term   string
	Limit  int
	Offset uint64
}

// HouseholdSearchFilter narrows a household search; Scope is always applied
type HouseholdSearchFilter struct {
	Term   string
	Scope  domain.Scope
	Limit  int
	Offset uint64
}

// ChangesFilter narrows a changes-journal query; Scope is always applied
type ChangesFilter struct {
	SubjectType *domain.ChangeSubject
	SubjectID   *string
	Scope       domain.Scope
	Limit       int
	Offset      uint64
}

// MemberStats are the aggregate counts recomputed on membership change
type MemberStats struct {
	MemberCount  int
	FamilyCount  int
	MigrantCount int
}

// Store defines the interface for database operations. Read paths that accept a
// domain.Scope intersect it with record locations; out-of-scope records are
// reported as absent, never as forbidden.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Transaction runs fn inside a single database transaction. The Store
	// passed to fn routes all operations through that transaction; a returned
	// error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// --- Reference hierarchy ---

	// GetGeoNode retrieves a geography node by code (nil when absent)
	GetGeoNode(ctx context.Context, code domain.GeoCode) (*schema.GeoNode, error)
	// GetGeoNodes retrieves multiple geography nodes keyed by code
	GetGeoNodes(ctx context.Context, codes []domain.GeoCode) (map[domain.GeoCode]*schema.GeoNode, error)
	// SearchGeoNodes finds geography nodes by name, ranked exact/prefix/substring
	SearchGeoNodes(ctx context.Context, filter GeoSearchFilter) ([]schema.GeoNode, uint64, error)
	// UpsertGeoNodes loads reference geography rows (seeding only)
	UpsertGeoNodes(ctx context.Context, nodes []schema.GeoNode) error

	// GetOccupationNode retrieves an occupation node by code (nil when absent)
	GetOccupationNode(ctx context.Context, code domain.OccupationCode) (*schema.OccupationNode, error)
	// SearchOccupationNodes finds occupation nodes by name, ranked like geo search
	SearchOccupationNodes(ctx context.Context, filter OccupationSearchFilter) ([]schema.OccupationNode, uint64, error)
	// SearchOccupationTitles finds position-title aliases matching a term
	SearchOccupationTitles(ctx context.Context, term string, limit int) ([]schema.OccupationTitle, error)
	// GetOccupationCrossRefs lists cross-reference edges starting from a code
	GetOccupationCrossRefs(ctx context.Context, code domain.OccupationCode) ([]schema.OccupationCrossRef, error)
	// UpsertOccupationNodes loads reference occupation rows (seeding only)
	UpsertOccupationNodes(ctx context.Context, nodes []schema.OccupationNode) error
	// UpsertOccupationTitles loads position-title aliases (seeding only)
	UpsertOccupationTitles(ctx context.Context, titles []schema.OccupationTitle) error
	// UpsertOccupationCrossRefs loads cross-reference edges (seeding only)
	UpsertOccupationCrossRefs(ctx context.Context, refs []schema.OccupationCrossRef) error

	// --- Identity (sequence allocation) ---

	// GetOrCreateSubdivision returns the subdivision, allocating the next
	// per-barangay sequence number on first registration. Concurrent
	// first-seen registrations serialize on the counter row.
	GetOrCreateSubdivision(ctx context.Context, barangayCode domain.GeoCode, name string) (*schema.Subdivision, error)
	// GetOrCreateStreet returns the street, allocating the next per-subdivision
	// sequence number on first registration
	GetOrCreateStreet(ctx context.Context, barangayCode domain.GeoCode, subdivisionID *uint64, name string) (*schema.Street, error)
	// GetSubdivision retrieves a subdivision by ID (nil when absent)
	GetSubdivision(ctx context.Context, id uint64) (*schema.Subdivision, error)
	// GetStreet retrieves a street by ID (nil when absent)
	GetStreet(ctx context.Context, id uint64) (*schema.Street, error)

	// --- Households ---

	// CreateHousehold inserts a new household row
	CreateHousehold(ctx context.Context, household *schema.Household) error
	// UpdateHousehold persists household mutations
	UpdateHousehold(ctx context.Context, household *schema.Household) error
	// GetHouseholdByID retrieves a household by internal ID (nil when absent)
	GetHouseholdByID(ctx context.Context, id uint64) (*schema.Household, error)
	// GetHouseholdByExternalID retrieves a household visible within scope
	GetHouseholdByExternalID(ctx context.Context, externalID string, scope domain.Scope) (*schema.Household, error)
	// GetHouseholdByCode retrieves a household by its hierarchical code within scope
	GetHouseholdByCode(ctx context.Context, code domain.HouseholdCode, scope domain.Scope) (*schema.Household, error)
	// SearchHouseholds finds households by code, name, or address within scope
	SearchHouseholds(ctx context.Context, filter HouseholdSearchFilter) ([]schema.Household, uint64, error)
	// GetHouseholdMemberStats recomputes aggregate counts from active memberships
	GetHouseholdMemberStats(ctx context.Context, householdID uint64) (MemberStats, error)
	// HouseholdHeadedBy returns the household a resident actively heads (nil when none)
	HouseholdHeadedBy(ctx context.Context, residentID uint64) (*schema.Household, error)

	// --- Residents and memberships ---

	// CreateResident inserts a new resident row
	CreateResident(ctx context.Context, resident *schema.Resident) error
	// UpdateResident persists resident mutations
	UpdateResident(ctx context.Context, resident *schema.Resident) error
	// GetResidentByID retrieves a resident by internal ID (nil when absent)
	GetResidentByID(ctx context.Context, id uint64) (*schema.Resident, error)
	// GetResidentByExternalID retrieves a resident visible within scope
	GetResidentByExternalID(ctx context.Context, externalID string, scope domain.Scope) (*schema.Resident, error)
	// FindResidentsByHash finds residents whose named hash column equals the
	// given search hash, within scope (equality search over encrypted fields)
	FindResidentsByHash(ctx context.Context, field string, hash string, scope domain.Scope) ([]schema.Resident, error)

	// GetActiveMembership retrieves a resident's active membership (nil when none)
	GetActiveMembership(ctx context.Context, residentID uint64) (*schema.HouseholdMembership, error)
	// ListActiveMemberships lists a household's active memberships
	ListActiveMemberships(ctx context.Context, householdID uint64) ([]schema.HouseholdMembership, error)
	// CreateMembership inserts a membership row
	CreateMembership(ctx context.Context, membership *schema.HouseholdMembership) error
	// EndMembership closes a membership as of endedAt
	EndMembership(ctx context.Context, membershipID uint64, endedAt time.Time) error

	// --- Encryption keys and audit ---

	// GetActiveEncryptionKey retrieves the single active version of a key (nil when none)
	GetActiveEncryptionKey(ctx context.Context, keyName string) (*schema.EncryptionKey, error)
	// GetEncryptionKey retrieves a specific key version (nil when absent)
	GetEncryptionKey(ctx context.Context, keyName string, version int) (*schema.EncryptionKey, error)
	// CreateEncryptionKey provisions version 1 of a key as active
	CreateEncryptionKey(ctx context.Context, keyName string, material string) (*schema.EncryptionKey, error)
	// RotateEncryptionKey inserts the next version and atomically moves the
	// active flag onto it
	RotateEncryptionKey(ctx context.Context, keyName string, material string) (*schema.EncryptionKey, error)
	// CreateDecryptAudit records a decrypt access
	CreateDecryptAudit(ctx context.Context, entry *schema.DecryptAuditLog) error

	// --- Changes journal ---

	// AppendChange appends a change-journal row
	AppendChange(ctx context.Context, change *schema.ChangesJournal) error
	// GetChanges lists journal rows within scope, ascending by ID
	GetChanges(ctx context.Context, filter ChangesFilter) ([]schema.ChangesJournal, uint64, error)

	// --- Rekey migration ---

	// GetRekeyCursor retrieves migration progress for a key (nil when never started)
	GetRekeyCursor(ctx context.Context, keyName string) (*schema.RekeyCursor, error)
	// SaveRekeyCursor upserts migration progress
	SaveRekeyCursor(ctx context.Context, cursor *schema.RekeyCursor) error
	// ListResidentsBehindKeyVersion pages residents still encrypted under a
	// version older than target, ordered by ID
	ListResidentsBehindKeyVersion(ctx context.Context, targetVersion int, afterID uint64, limit int) ([]schema.Resident, error)
	// ApplyResidentRekey writes re-encrypted ciphers and hashes only if the
	// record's key version is still expectedVersion; reports whether anything
	// was updated (false means another writer already migrated the row)
	ApplyResidentRekey(ctx context.Context, resident *schema.Resident, expectedVersion int) (bool, error)
}
