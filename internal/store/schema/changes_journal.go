package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/openbarangay/registry/internal/domain"
)

// ChangesJournal represents the changes_journal table - a sequential audit log
// of registry mutations, appended inside the same transaction as the write it
// records.
type ChangesJournal struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SubjectType and SubjectID identify the mutated record
	SubjectType domain.ChangeSubject `gorm:"column:subject_type;not null;type:text;uniqueIndex:idx_changes_journal_subject_changed,priority:1"`
	SubjectID   string               `gorm:"column:subject_id;not null;type:text;uniqueIndex:idx_changes_journal_subject_changed,priority:2"`
	// BarangayCode locates the change for scope-filtered reads
	BarangayCode string `gorm:"column:barangay_code;not null;type:text;index"`
	// Operation is the mutation kind (create, update, deactivate, rekey, ...)
	Operation string `gorm:"column:operation;not null;type:text"`
	// PrincipalID attributes the change to its caller
	PrincipalID string `gorm:"column:principal_id;not null;type:text"`
	// Meta carries operation-specific details as JSON
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`

	ChangedAt time.Time `gorm:"column:changed_at;not null;uniqueIndex:idx_changes_journal_subject_changed,priority:3"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the ChangesJournal model
func (ChangesJournal) TableName() string {
	return "changes_journal"
}

// RekeyCursor represents the rekey_cursors table - persisted progress of the
// re-encryption migration so the worker can resume after a restart.
type RekeyCursor struct {
	// KeyName identifies which logical key's migration the cursor tracks
	KeyName string `gorm:"column:key_name;primaryKey;type:text"`
	// TargetVersion is the version being migrated to
	TargetVersion int `gorm:"column:target_version;not null"`
	// LastResidentID is the highest resident ID already migrated
	LastResidentID uint64 `gorm:"column:last_resident_id;not null;default:0"`
	// Migrated counts records re-encrypted so far
	Migrated uint64 `gorm:"column:migrated;not null;default:0"`

	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the RekeyCursor model
func (RekeyCursor) TableName() string {
	return "rekey_cursors"
}
