package schema

import (
	"time"
)

// EncryptionKey represents the encryption_keys table - versioned key-management
// records. Exactly one version per key name is active at a time; superseded
// versions are kept (never deleted) so values written under them remain
// decryptable until the rekey migration catches up.
type EncryptionKey struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// KeyName groups versions of the same logical key
	KeyName string `gorm:"column:key_name;not null;type:text;uniqueIndex:idx_encryption_keys_name_version,priority:1"`
	// Version is monotonic per key name
	Version int `gorm:"column:version;not null;uniqueIndex:idx_encryption_keys_name_version,priority:2"`
	// Material is the raw 32-byte key, base64-encoded at rest
	Material string `gorm:"column:material;not null;type:text"`
	// Active marks the version used for new writes
	Active bool `gorm:"column:active;not null;default:false;index"`

	CreatedAt time.Time  `gorm:"column:created_at;not null;default:now()"`
	RotatedAt *time.Time `gorm:"column:rotated_at"`
}

// TableName specifies the table name for the EncryptionKey model
func (EncryptionKey) TableName() string {
	return "encryption_keys"
}

// DecryptAuditLog represents the decrypt_audit_logs table. Every decrypt call
// is recorded with caller identity, field name, and timestamp regardless of
// whether the downstream view was full or masked.
type DecryptAuditLog struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EntryID is a time-sortable unique identifier (ULID)
	EntryID string `gorm:"column:entry_id;not null;uniqueIndex;type:text"`
	// PrincipalID is the opaque caller identity from the session provider
	PrincipalID string `gorm:"column:principal_id;not null;type:text;index"`
	// ResidentID and FieldName identify what was decrypted
	ResidentID uint64 `gorm:"column:resident_id;not null;index"`
	FieldName  string `gorm:"column:field_name;not null;type:text"`
	// KeyVersion records the key version used for the decrypt
	KeyVersion int `gorm:"column:key_version;not null"`

	AccessedAt time.Time `gorm:"column:accessed_at;not null;default:now()"`
}

// TableName specifies the table name for the DecryptAuditLog model
func (DecryptAuditLog) TableName() string {
	return "decrypt_audit_logs"
}
