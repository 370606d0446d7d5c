package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbarangay/registry/internal/domain"
)

// Household represents the households table - a residential unit. The code is
// assigned once at registration and immutable afterwards; households are
// soft-deactivated on dissolution or relocation, never physically removed.
type Household struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ExternalID is the stable identifier exposed through the API
	ExternalID string `gorm:"column:external_id;not null;uniqueIndex;type:text"`
	// Code is the hierarchical household identifier (RRPPMMBBB-SSSS-TTTT-HHHH)
	Code string `gorm:"column:code;not null;uniqueIndex;type:text"`
	// BarangayCode locates the household for scope filtering
	BarangayCode string `gorm:"column:barangay_code;not null;type:text;index"`
	// SubdivisionID and StreetID reference the local sub-barangay entities, nil when absent
	SubdivisionID *uint64 `gorm:"column:subdivision_id;index"`
	StreetID      *uint64 `gorm:"column:street_id;index"`
	// HouseNumber is the caller-supplied house number literal
	HouseNumber string `gorm:"column:house_number;not null;type:text"`

	// Name is derived from the head's family name; nil while the head is unset
	// or unresolvable
	Name *string `gorm:"column:name;type:text"`
	// Address is the derived human-readable address
	Address *string `gorm:"column:address;type:text"`

	// HeadResidentID references the single qualifying head resident
	HeadResidentID *uint64 `gorm:"column:head_resident_id;index"`

	// Aggregate counts recomputed on membership change
	MemberCount  int `gorm:"column:member_count;not null;default:0"`
	FamilyCount  int `gorm:"column:family_count;not null;default:0"`
	MigrantCount int `gorm:"column:migrant_count;not null;default:0"`

	// MonthlyIncome drives the derived income classification
	MonthlyIncome *decimal.Decimal   `gorm:"column:monthly_income;type:numeric"`
	IncomeClass   domain.IncomeClass `gorm:"column:income_class;not null;type:text;default:'not_determined'"`

	Active bool `gorm:"column:active;not null;default:true"`

	CreatedBy string    `gorm:"column:created_by;not null;type:text"`
	UpdatedBy string    `gorm:"column:updated_by;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Memberships []HouseholdMembership `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Household model
func (Household) TableName() string {
	return "households"
}

// Subdivision represents the subdivisions table - a named sub-barangay area.
// The name is unique per barangay; the sequence number is assigned on first
// registration and reused afterwards.
type Subdivision struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	BarangayCode string `gorm:"column:barangay_code;not null;type:text;uniqueIndex:idx_subdivisions_barangay_name,priority:1"`
	Name         string `gorm:"column:name;not null;type:text;uniqueIndex:idx_subdivisions_barangay_name,priority:2"`
	// Seq is the per-barangay sequence number used in household codes
	Seq int `gorm:"column:seq;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Subdivision model
func (Subdivision) TableName() string {
	return "subdivisions"
}

// Street represents the streets table - a named street scoped to a subdivision
// (SubdivisionID nil means directly under the barangay). Postgres treats NULLs
// as distinct in unique indexes, so subdivision-less streets need their own
// partial index to keep the name unique per barangay.
type Street struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	BarangayCode  string  `gorm:"column:barangay_code;not null;type:text;uniqueIndex:idx_streets_scope_name,priority:1;uniqueIndex:idx_streets_barangay_name,priority:1,where:subdivision_id IS NULL"`
	SubdivisionID *uint64 `gorm:"column:subdivision_id;uniqueIndex:idx_streets_scope_name,priority:2"`
	Name          string  `gorm:"column:name;not null;type:text;uniqueIndex:idx_streets_scope_name,priority:3;uniqueIndex:idx_streets_barangay_name,priority:2,where:subdivision_id IS NULL"`
	// Seq is the per-subdivision sequence number used in household codes
	Seq int `gorm:"column:seq;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Street model
func (Street) TableName() string {
	return "streets"
}

// Sequence counter scopes
const (
	CounterScopeSubdivision = "subdivision"
	CounterScopeStreet      = "street"
)

// SequenceCounter represents the sequence_counters table - an explicit
// monotonic counter keyed by (barangay_code, scope, scope_key). Allocation
// locks the row so two first-seen registrations of the same subdivision or
// street can never draw the same number.
type SequenceCounter struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	BarangayCode string `gorm:"column:barangay_code;not null;type:text;uniqueIndex:idx_sequence_counters_key,priority:1"`
	// Scope is what the counter numbers (subdivision, street)
	Scope string `gorm:"column:scope;not null;type:text;uniqueIndex:idx_sequence_counters_key,priority:2"`
	// ScopeKey narrows street counters to their subdivision; empty otherwise
	ScopeKey string `gorm:"column:scope_key;not null;type:text;default:'';uniqueIndex:idx_sequence_counters_key,priority:3"`
	// LastSeq is the most recently issued number
	LastSeq int `gorm:"column:last_seq;not null;default:0"`

	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the SequenceCounter model
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
