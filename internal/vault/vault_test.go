package vault_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type vaultMocks struct {
	ctrl  *gomock.Controller
	store *mocks.MockStore
	clock *mocks.MockClock
}

func newVaultMocks(t *testing.T) (*vaultMocks, vault.Vault) {
	ctrl := gomock.NewController(t)
	m := &vaultMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	return m, vault.New(m.store, m.clock, "pii")
}

func keyRow(version int, material string, active bool) *schema.EncryptionKey {
	return &schema.EncryptionKey{
		ID:       uint64(version), //nolint:gosec
		KeyName:  "pii",
		Version:  version,
		Material: material,
		Active:   active,
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	material, err := vault.GenerateMaterial()
	require.NoError(t, err)

	m.store.EXPECT().GetActiveEncryptionKey(ctx, "pii").
		Return(keyRow(1, material, true), nil)

	ciphertext, version, err := v.Encrypt(ctx, "Maria Clara")
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.NotContains(t, string(ciphertext), "Maria")

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now)
	m.store.EXPECT().CreateDecryptAudit(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.DecryptAuditLog) error {
			assert.Equal(t, "clerk-1", entry.PrincipalID)
			assert.Equal(t, uint64(42), entry.ResidentID)
			assert.Equal(t, "given_name", entry.FieldName)
			assert.Equal(t, 1, entry.KeyVersion)
			assert.Equal(t, now, entry.AccessedAt)
			assert.NotEmpty(t, entry.EntryID)
			return nil
		})

	// Key version 1 is cached from the encrypt; no store fetch needed
	plaintext, err := v.Decrypt(ctx, m.store, ciphertext, 1, vault.AccessContext{
		PrincipalID: "clerk-1",
		ResidentID:  42,
		Field:       "given_name",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Clara", plaintext)
}

func TestDecryptAuditsThroughCallerStore(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	material, err := vault.GenerateMaterial()
	require.NoError(t, err)
	m.store.EXPECT().GetActiveEncryptionKey(ctx, "pii").
		Return(keyRow(1, material, true), nil)
	ciphertext, _, err := v.Encrypt(ctx, "Maria Clara")
	require.NoError(t, err)

	// A decrypt inside a registrar transaction hands its tx store; the audit
	// row lands there, not on the vault's construction store, so a rolled
	// back write takes its audit with it
	txStore := mocks.NewMockStore(m.ctrl)
	m.clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	txStore.EXPECT().CreateDecryptAudit(ctx, gomock.Any()).Return(nil)

	plaintext, err := v.Decrypt(ctx, txStore, ciphertext, 1, vault.AccessContext{
		PrincipalID: "clerk-1",
		ResidentID:  42,
		Field:       "given_name",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Clara", plaintext)
}

func TestDecryptMissingVersion(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	m.store.EXPECT().GetEncryptionKey(ctx, "pii", 7).Return(nil, nil)

	_, err := v.Decrypt(ctx, m.store, []byte("irrelevant"), 7, vault.AccessContext{})
	assert.ErrorIs(t, err, domain.ErrKeyUnavailable)
}

func TestEncryptNoActiveKey(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	m.store.EXPECT().GetActiveEncryptionKey(ctx, "pii").Return(nil, nil)

	_, _, err := v.Encrypt(ctx, "anything")
	assert.ErrorIs(t, err, domain.ErrNoActiveKey)
}

func TestSearchHashDeterministicPerVersion(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	m1, err := vault.GenerateMaterial()
	require.NoError(t, err)
	m2, err := vault.GenerateMaterial()
	require.NoError(t, err)

	m.store.EXPECT().GetEncryptionKey(ctx, "pii", 1).Return(keyRow(1, m1, false), nil)
	m.store.EXPECT().GetEncryptionKey(ctx, "pii", 2).Return(keyRow(2, m2, true), nil)

	h1a, err := v.SearchHash(ctx, "Santos", 1)
	require.NoError(t, err)
	h1b, err := v.SearchHash(ctx, "Santos", 1)
	require.NoError(t, err)
	h2, err := v.SearchHash(ctx, "Santos", 2)
	require.NoError(t, err)

	assert.Equal(t, h1a, h1b)
	assert.NotEqual(t, h1a, h2)

	other, err := v.SearchHash(ctx, "santos", 1)
	require.NoError(t, err)
	assert.NotEqual(t, h1a, other)
}

func TestReencryptAcrossRotation(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	m1, err := vault.GenerateMaterial()
	require.NoError(t, err)
	m2, err := vault.GenerateMaterial()
	require.NoError(t, err)

	m.store.EXPECT().GetActiveEncryptionKey(ctx, "pii").
		Return(keyRow(1, m1, true), nil)
	ciphertext, version, err := v.Encrypt(ctx, "09171234567")
	require.NoError(t, err)
	require.Equal(t, 1, version)

	// After rotation the active key is version 2
	m.store.EXPECT().GetActiveEncryptionKey(ctx, "pii").
		Return(keyRow(2, m2, true), nil).AnyTimes()

	rewrapped, newVersion, err := v.Reencrypt(ctx, ciphertext, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, newVersion)
	assert.NotEqual(t, ciphertext, rewrapped)

	// The rewrapped value opens under version 2
	m.clock.EXPECT().Now().Return(time.Now())
	m.store.EXPECT().CreateDecryptAudit(ctx, gomock.Any()).Return(nil)
	plaintext, err := v.Decrypt(ctx, m.store, rewrapped, 2, vault.AccessContext{PrincipalID: "clerk-1"})
	require.NoError(t, err)
	assert.Equal(t, "09171234567", plaintext)
}

func TestRotateFirstVersion(t *testing.T) {
	m, v := newVaultMocks(t)
	defer m.ctrl.Finish()
	ctx := context.Background()

	m.store.EXPECT().GetActiveEncryptionKey(ctx, "pii").Return(nil, nil)
	m.store.EXPECT().CreateEncryptionKey(ctx, "pii", gomock.Any()).
		DoAndReturn(func(_ context.Context, keyName, material string) (*schema.EncryptionKey, error) {
			return keyRow(1, material, true), nil
		})

	version, err := v.Rotate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestMasking(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"name keeps first rune", vault.MaskName, "Maria", "M*****"},
		{"name multibyte first rune", vault.MaskName, "Ñoño", "Ñ*****"},
		{"empty name", vault.MaskName, "", ""},
		{"mobile keeps last four", vault.MaskTail, "09171234567", "*******4567"},
		{"short id fully masked", vault.MaskTail, "1234", "****"},
		{"email keeps domain", vault.MaskEmail, "maria@example.ph", "m*****@example.ph"},
		{"not an email", vault.MaskEmail, "no-at-sign", "n*****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}
