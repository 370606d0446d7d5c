package vault

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

// AccessContext identifies who is decrypting what, for the audit trail
type AccessContext struct {
	PrincipalID string
	ResidentID  uint64
	Field       string
}

// Vault encrypts and decrypts personal-identity values under versioned keys
//
//go:generate mockgen -source=vault.go -destination=../mocks/vault.go -package=mocks -mock_names=Vault=MockVault
type Vault interface {
	// Encrypt seals plaintext under the active key and reports the version used.
	// No active key fails the write with ErrNoActiveKey.
	Encrypt(ctx context.Context, plaintext string) ([]byte, int, error)

	// Decrypt opens ciphertext sealed under the given key version and records
	// an audit row for the access through tx, so an audit written inside a
	// transaction rolls back with it. A missing version yields
	// ErrKeyUnavailable.
	Decrypt(ctx context.Context, tx store.Store, ciphertext []byte, keyVersion int, access AccessContext) (string, error)

	// SearchHash computes the deterministic one-way hash for equality search,
	// keyed by the given key version's hash secret
	SearchHash(ctx context.Context, plaintext string, keyVersion int) (string, error)

	// ActiveVersion reports the version new writes will use
	ActiveVersion(ctx context.Context) (int, error)

	// Reencrypt opens ciphertext under fromVersion and seals it under the
	// active key. Used by the rekey migration, which journals per record
	// instead of writing per-field audit rows.
	Reencrypt(ctx context.Context, ciphertext []byte, fromVersion int) ([]byte, int, error)

	// ReencryptWithHash additionally recomputes the search hash under the
	// active key so a searchable column and its cipher move versions together
	ReencryptWithHash(ctx context.Context, ciphertext []byte, fromVersion int) ([]byte, string, int, error)

	// Rotate provisions the next key version and makes it active
	Rotate(ctx context.Context) (int, error)
}

type vault struct {
	keyring *Keyring
	clock   adapter.Clock
}

// New creates a vault over the named logical key
func New(s store.Store, clock adapter.Clock, keyName string) Vault {
	return &vault{
		keyring: NewKeyring(s, keyName),
		clock:   clock,
	}
}

func (v *vault) Encrypt(ctx context.Context, plaintext string) ([]byte, int, error) {
	material, err := v.keyring.active(ctx)
	if err != nil {
		return nil, 0, err
	}
	sealed, err := seal(material, plaintext)
	if err != nil {
		return nil, 0, err
	}
	return sealed, material.version, nil
}

func (v *vault) Decrypt(ctx context.Context, tx store.Store, ciphertext []byte, keyVersion int, access AccessContext) (string, error) {
	material, err := v.keyring.version(ctx, keyVersion)
	if err != nil {
		return "", err
	}

	plaintext, err := open(material, ciphertext)
	if err != nil {
		return "", err
	}

	now := v.clock.Now()
	entry := &schema.DecryptAuditLog{
		EntryID:     newEntryID(now),
		PrincipalID: access.PrincipalID,
		ResidentID:  access.ResidentID,
		FieldName:   access.Field,
		KeyVersion:  keyVersion,
		AccessedAt:  now,
	}
	if err := tx.CreateDecryptAudit(ctx, entry); err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "pii field decrypted",
		zap.String("principal_id", access.PrincipalID),
		zap.Uint64("resident_id", access.ResidentID),
		zap.String("field", access.Field),
		zap.Int("key_version", keyVersion))

	return plaintext, nil
}

func (v *vault) SearchHash(ctx context.Context, plaintext string, keyVersion int) (string, error) {
	material, err := v.keyring.version(ctx, keyVersion)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, material.hashSecret)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func (v *vault) ActiveVersion(ctx context.Context) (int, error) {
	material, err := v.keyring.active(ctx)
	if err != nil {
		return 0, err
	}
	return material.version, nil
}

func (v *vault) Reencrypt(ctx context.Context, ciphertext []byte, fromVersion int) ([]byte, int, error) {
	from, err := v.keyring.version(ctx, fromVersion)
	if err != nil {
		return nil, 0, err
	}
	plaintext, err := open(from, ciphertext)
	if err != nil {
		return nil, 0, err
	}
	return v.Encrypt(ctx, plaintext)
}

func (v *vault) ReencryptWithHash(ctx context.Context, ciphertext []byte, fromVersion int) ([]byte, string, int, error) {
	from, err := v.keyring.version(ctx, fromVersion)
	if err != nil {
		return nil, "", 0, err
	}
	plaintext, err := open(from, ciphertext)
	if err != nil {
		return nil, "", 0, err
	}
	sealed, version, err := v.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, "", 0, err
	}
	hash, err := v.SearchHash(ctx, plaintext, version)
	if err != nil {
		return nil, "", 0, err
	}
	return sealed, hash, version, nil
}

func (v *vault) Rotate(ctx context.Context) (int, error) {
	return v.keyring.Rotate(ctx)
}

// seal encrypts plaintext with a random nonce prepended to the output
func seal(material *keyMaterial, plaintext string) ([]byte, error) {
	nonce := make([]byte, material.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return material.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// open decrypts a nonce-prefixed ciphertext
func open(material *keyMaterial, ciphertext []byte) (string, error) {
	nonceSize := material.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext shorter than nonce", domain.ErrKeyUnavailable)
	}
	plaintext, err := material.aead.Open(nil, ciphertext[:nonceSize], ciphertext[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: decrypt with key version %d failed: %v", domain.ErrKeyUnavailable, material.version, err)
	}
	return string(plaintext), nil
}

// newEntryID builds a time-sortable ULID for an audit row
func newEntryID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0)).String()
}
