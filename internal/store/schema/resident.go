package schema

import (
	"time"

	"github.com/openbarangay/registry/internal/domain"
)

// Resident represents the residents table. Personal-identity fields are stored
// encrypted with a companion one-way search hash; every encrypted column on a
// record is tagged with the key version that produced it so rotation never
// strands old rows.
type Resident struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ExternalID is the stable identifier exposed through the API
	ExternalID string `gorm:"column:external_id;not null;uniqueIndex;type:text"`

	// Encrypted PII columns with companion search hashes. The hash is
	// regenerated whenever the plaintext changes and during key rotation.
	GivenNameCipher  []byte `gorm:"column:given_name_cipher;not null;type:bytea"`
	GivenNameHash    string `gorm:"column:given_name_hash;not null;type:text;index"`
	MiddleNameCipher []byte `gorm:"column:middle_name_cipher;type:bytea"`
	MiddleNameHash   string `gorm:"column:middle_name_hash;type:text"`
	FamilyNameCipher []byte `gorm:"column:family_name_cipher;not null;type:bytea"`
	FamilyNameHash   string `gorm:"column:family_name_hash;not null;type:text;index"`
	FullNameCipher   []byte `gorm:"column:full_name_cipher;type:bytea"`
	GovernmentIDCipher []byte `gorm:"column:government_id_cipher;type:bytea"`
	GovernmentIDHash   string `gorm:"column:government_id_hash;type:text;index"`
	MobileCipher       []byte `gorm:"column:mobile_cipher;type:bytea"`
	MobileHash         string `gorm:"column:mobile_hash;type:text;index"`
	EmailCipher        []byte `gorm:"column:email_cipher;type:bytea"`
	EmailHash          string `gorm:"column:email_hash;type:text;index"`
	MotherMaidenCipher []byte `gorm:"column:mother_maiden_cipher;type:bytea"`
	MotherMaidenHash   string `gorm:"column:mother_maiden_hash;type:text"`

	// KeyVersion tags every encrypted column above; the rekey migration scans
	// for rows behind the active version
	KeyVersion int `gorm:"column:key_version;not null;index"`

	// Non-sensitive demographics
	Birthdate       time.Time               `gorm:"column:birthdate;not null"`
	Sex             domain.Sex              `gorm:"column:sex;not null;type:text"`
	CivilStatus     domain.CivilStatus      `gorm:"column:civil_status;not null;type:text"`
	EducationLevel  string                  `gorm:"column:education_level;type:text"`
	EmploymentStatus domain.EmploymentStatus `gorm:"column:employment_status;not null;type:text;default:'not_applicable'"`
	// OccupationCode references the occupational classification tree
	OccupationCode *string `gorm:"column:occupation_code;type:text"`
	// BirthPlaceCode references the geography tree
	BirthPlaceCode *string `gorm:"column:birth_place_code;type:text"`
	BloodType      string  `gorm:"column:blood_type;type:text"`
	Ethnicity      string  `gorm:"column:ethnicity;type:text"`
	Religion       string  `gorm:"column:religion;type:text"`

	// Sectoral classification source fields (authoritative inputs)
	CurrentlyEnrolled         bool `gorm:"column:currently_enrolled;not null;default:false"`
	GraduatedBeyondSecondary  bool `gorm:"column:graduated_beyond_secondary;not null;default:false"`
	RegisteredPWD             bool `gorm:"column:registered_pwd;not null;default:false"`
	RegisteredSoloParent      bool `gorm:"column:registered_solo_parent;not null;default:false"`
	OverseasWorker            bool `gorm:"column:overseas_worker;not null;default:false"`
	IndigenousGroupAffiliated bool `gorm:"column:indigenous_group_affiliated;not null;default:false"`
	MigratedWithinPeriod      bool `gorm:"column:migrated_within_period;not null;default:false"`

	// Derived fields
	Age              int     `gorm:"column:age;not null;default:0"`
	BirthPlaceName   *string `gorm:"column:birth_place_name;type:text"`
	EmploymentTitle  *string `gorm:"column:employment_title;type:text"`
	SeniorCitizen    bool    `gorm:"column:senior_citizen;not null;default:false"`
	OutOfSchoolYouth bool    `gorm:"column:out_of_school_youth;not null;default:false"`
	LaborForce       bool    `gorm:"column:labor_force;not null;default:false"`

	// BarangayCode locates the resident for scope filtering
	BarangayCode string `gorm:"column:barangay_code;not null;type:text;index"`

	Active bool `gorm:"column:active;not null;default:true"`

	CreatedBy string    `gorm:"column:created_by;not null;type:text"`
	UpdatedBy string    `gorm:"column:updated_by;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Memberships []HouseholdMembership `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Resident model
func (Resident) TableName() string {
	return "residents"
}

// HouseholdMembership represents the household_memberships table - the join
// entity between residents and households. A resident holds at most one active
// membership at a time.
type HouseholdMembership struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	HouseholdID uint64 `gorm:"column:household_id;not null;index"`
	ResidentID  uint64 `gorm:"column:resident_id;not null;index"`
	// RelationshipToHead is relative to the household head (head, spouse, child, ...)
	RelationshipToHead string `gorm:"column:relationship_to_head;not null;type:text"`
	// FamilyPosition groups members into families within the household
	FamilyPosition string `gorm:"column:family_position;type:text"`
	// FamilyNumber distinguishes families within a multi-family household
	FamilyNumber int `gorm:"column:family_number;not null;default:1"`

	Active    bool       `gorm:"column:active;not null;default:true"`
	StartedAt time.Time  `gorm:"column:started_at;not null;default:now()"`
	EndedAt   *time.Time `gorm:"column:ended_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the HouseholdMembership model
func (HouseholdMembership) TableName() string {
	return "household_memberships"
}
