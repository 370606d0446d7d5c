package vault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
)

// keyMaterialSize is the raw size of an AES-256 key
const keyMaterialSize = 32

// keyMaterial is a decoded key version ready for use
type keyMaterial struct {
	version    int
	aead       cipher.AEAD
	hashSecret []byte
}

// Keyring resolves key versions to usable cipher state. Decoded versions are
// cached forever; key material is immutable once written. The active version
// is always read through the store so a rotation done elsewhere takes effect
// on the next write.
type Keyring struct {
	store   store.Store
	keyName string

	mu    sync.RWMutex
	cache map[int]*keyMaterial
}

// NewKeyring creates a keyring over the named logical key
func NewKeyring(s store.Store, keyName string) *Keyring {
	return &Keyring{
		store:   s,
		keyName: keyName,
		cache:   make(map[int]*keyMaterial),
	}
}

// GenerateMaterial returns a fresh base64-encoded 32-byte key
func GenerateMaterial() (string, error) {
	raw := make([]byte, keyMaterialSize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// buildMaterial decodes stored material into an AEAD and the hash secret. The
// hash secret is derived from the raw key so the two never share bytes
// directly.
func buildMaterial(version int, encoded string) (*keyMaterial, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: key version %d material is not base64: %v", domain.ErrKeyUnavailable, version, err)
	}
	if len(raw) != keyMaterialSize {
		return nil, fmt.Errorf("%w: key version %d material is %d bytes, want %d", domain.ErrKeyUnavailable, version, len(raw), keyMaterialSize)
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: key version %d: %v", domain.ErrKeyUnavailable, version, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: key version %d: %v", domain.ErrKeyUnavailable, version, err)
	}

	mac := hmac.New(sha256.New, raw)
	mac.Write([]byte("search-hash"))

	return &keyMaterial{
		version:    version,
		aead:       aead,
		hashSecret: mac.Sum(nil),
	}, nil
}

// active returns the currently active key version
func (k *Keyring) active(ctx context.Context) (*keyMaterial, error) {
	row, err := k.store.GetActiveEncryptionKey(ctx, k.keyName)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: key %q has no active version", domain.ErrNoActiveKey, k.keyName)
	}
	return k.materialFor(row.Version, row.Material)
}

// version returns a specific key version, fetching it if not cached
func (k *Keyring) version(ctx context.Context, version int) (*keyMaterial, error) {
	k.mu.RLock()
	cached, ok := k.cache[version]
	k.mu.RUnlock()
	if ok {
		return cached, nil
	}

	row, err := k.store.GetEncryptionKey(ctx, k.keyName, version)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: key %q version %d not found", domain.ErrKeyUnavailable, k.keyName, version)
	}
	return k.materialFor(row.Version, row.Material)
}

func (k *Keyring) materialFor(version int, encoded string) (*keyMaterial, error) {
	k.mu.RLock()
	cached, ok := k.cache[version]
	k.mu.RUnlock()
	if ok {
		return cached, nil
	}

	material, err := buildMaterial(version, encoded)
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	k.cache[version] = material
	k.mu.Unlock()
	return material, nil
}

// Rotate provisions the next key version and makes it active. The first call
// for a key name creates version 1.
func (k *Keyring) Rotate(ctx context.Context) (int, error) {
	material, err := GenerateMaterial()
	if err != nil {
		return 0, err
	}

	current, err := k.store.GetActiveEncryptionKey(ctx, k.keyName)
	if err != nil {
		return 0, err
	}

	if current == nil {
		created, err := k.store.CreateEncryptionKey(ctx, k.keyName, material)
		if err != nil {
			return 0, err
		}
		return created.Version, nil
	}

	next, err := k.store.RotateEncryptionKey(ctx, k.keyName, material)
	if err != nil {
		return 0, err
	}
	return next.Version, nil
}
