package registrar

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/identity"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/messaging"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/vault"
)

const (
	// writeAttempts bounds retries of a write transaction on sequence or
	// duplicate-name races before the conflict surfaces to the caller
	writeAttempts = 3

	retryInitialInterval = 50 * time.Millisecond
)

// Service is the registry write and read pipeline. Every write runs as one
// store transaction covering identity assignment, encryption, derived fields,
// and the change journal; the change event publishes after commit and is
// non-fatal.
//
//go:generate mockgen -source=service.go -destination=../mocks/registrar.go -package=mocks -mock_names=Service=MockRegistrarService
type Service interface {
	CreateHousehold(ctx context.Context, principal domain.Principal, in CreateHouseholdInput) (*HouseholdResult, error)
	UpdateHousehold(ctx context.Context, principal domain.Principal, externalID string, in UpdateHouseholdInput) (*HouseholdResult, error)
	GetHousehold(ctx context.Context, principal domain.Principal, externalID string) (*HouseholdView, error)
	SearchHouseholds(ctx context.Context, principal domain.Principal, term string, limit int, offset uint64) ([]HouseholdView, uint64, error)
	DeactivateHousehold(ctx context.Context, principal domain.Principal, externalID string) error

	CreateResident(ctx context.Context, principal domain.Principal, in ResidentInput) (*ResidentResult, error)
	UpdateResident(ctx context.Context, principal domain.Principal, externalID string, in ResidentInput) (*ResidentResult, error)
	GetResident(ctx context.Context, principal domain.Principal, externalID string, mode domain.ReadMode) (*ResidentView, error)
	FindResidents(ctx context.Context, principal domain.Principal, field, value string) ([]ResidentView, error)
	DeactivateResident(ctx context.Context, principal domain.Principal, externalID string) error

	AddMember(ctx context.Context, principal domain.Principal, in AddMemberInput) (*HouseholdResult, error)
	RemoveMember(ctx context.Context, principal domain.Principal, householdExternalID, residentExternalID string) (*HouseholdResult, error)

	GetChanges(ctx context.Context, principal domain.Principal, filter store.ChangesFilter) ([]ChangeView, uint64, error)
}

type service struct {
	store     store.Store
	generator identity.Generator
	vault     vault.Vault
	resolver  deriver.Resolver
	publisher messaging.Publisher
	clock     adapter.Clock
}

// New creates the registrar. The publisher may be nil; change events are then
// only journaled.
func New(
	s store.Store,
	generator identity.Generator,
	v vault.Vault,
	resolver deriver.Resolver,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Service {
	return &service{
		store:     s,
		generator: generator,
		vault:     v,
		resolver:  resolver,
		publisher: publisher,
		clock:     clock,
	}
}

// withRetry runs fn, retrying on concurrency conflicts with jittered backoff.
// Everything else surfaces immediately.
func (s *service) withRetry(ctx context.Context, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, writeAttempts-1), ctx)

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// requireInScope rejects writes that target a barangay outside the caller's
// jurisdiction
func requireInScope(principal domain.Principal, barangayCode domain.GeoCode) error {
	if !principal.Scope.Contains(barangayCode) {
		return fmt.Errorf("%w: barangay %s is outside the caller's scope", domain.ErrScopeViolation, barangayCode)
	}
	return nil
}

// newID builds a time-sortable ULID string
func (s *service) newID() string {
	now := s.clock.Now()
	return ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0)).String()
}

// publishChange emits the post-commit change event. Delivery failures are
// logged, never returned; the journal row written inside the transaction is
// the durable record.
func (s *service) publishChange(ctx context.Context, event *domain.ChangeEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, event); err != nil {
		logger.WarnCtx(ctx, "change event publish failed",
			zap.String("subject", string(event.Subject)),
			zap.String("subject_id", event.SubjectID),
			zap.Error(err))
	}
}
