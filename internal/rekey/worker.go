package rekey

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

const (
	// IDLE_INTERVAL is the sleep between cycles once every record sits on the
	// active key version
	IDLE_INTERVAL = 5 * time.Minute

	// rekeyPrincipal attributes migration journal rows
	rekeyPrincipal = "rekey-worker"
)

// Config holds configuration for the rekey worker
type Config struct {
	KeyName        string
	BatchSize      int // Residents to migrate per batch
	WorkerPoolSize int // Concurrent migrations within a batch
}

// Worker drives the background re-encryption migration after a key rotation.
// Progress is persisted per batch, so a restart resumes where the previous
// run stopped instead of rescanning from zero.
type Worker interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type worker struct {
	config    *Config
	store     store.Store
	vault     vault.Vault
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewWorker creates a rekey worker
func NewWorker(config *Config, st store.Store, v vault.Vault, clock adapter.Clock) Worker {
	return &worker{
		config:    config,
		store:     st,
		vault:     v,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *worker) Name() string {
	return "rekey-worker"
}

// Start begins the migration loop. It runs until the context is canceled or
// Stop is called.
func (w *worker) Start(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return fmt.Errorf("rekey worker already running")
	}
	defer func() {
		w.running.Store(false)
		close(w.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting rekey worker",
		zap.String("key_name", w.config.KeyName),
		zap.Int("batch_size", w.config.BatchSize),
		zap.Int("worker_pool_size", w.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Rekey worker stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-w.stopChan:
			logger.InfoCtx(ctx, "Rekey worker stop requested")
			return nil
		default:
			if err := w.runCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
				if !w.sleep(ctx, IDLE_INTERVAL) {
					return nil
				}
			}
		}
	}
}

// Stop gracefully stops the worker with timeout support
func (w *worker) Stop(ctx context.Context) error {
	if !w.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping rekey worker")
	close(w.stopChan)

	select {
	case <-w.stoppedCh:
		logger.InfoCtx(ctx, "Rekey worker stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Rekey worker stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle migrates one batch of residents behind the active key version
func (w *worker) runCycle(ctx context.Context) error {
	target, err := w.vault.ActiveVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve active key version: %w", err)
	}

	cursor, err := w.loadCursor(ctx, target)
	if err != nil {
		return err
	}

	residents, err := w.store.ListResidentsBehindKeyVersion(ctx, target, cursor.LastResidentID, w.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list residents behind key version: %w", err)
	}

	if len(residents) == 0 {
		if cursor.LastResidentID != 0 {
			// End of the table; wrap around once so rows whose first
			// migration attempt failed get retried
			cursor.LastResidentID = 0
			return w.saveCursorWithRetry(ctx, cursor)
		}
		logger.InfoCtx(ctx, "All records on active key version, idling",
			zap.Int("target_version", target),
			zap.Uint64("migrated_total", cursor.Migrated),
		)
		if !w.sleep(ctx, IDLE_INTERVAL) {
			return ctx.Err()
		}
		return nil
	}

	startTime := w.clock.Now()
	// The pool lives for one batch; StopAndWait below drains it before the
	// cursor advances.
	pool := pond.NewPool(
		w.config.WorkerPoolSize,
		pond.WithQueueSize(w.config.BatchSize),
		pond.WithContext(ctx),
	)

	var migrated, skipped, failed atomic.Uint64
	for i := range residents {
		resident := residents[i]
		pool.Submit(func() {
			switch ok, err := w.rekeyResident(ctx, &resident, target); {
			case err != nil:
				failed.Add(1)
				logger.ErrorCtx(ctx, err,
					zap.String("resident_id", resident.ExternalID),
					zap.Int("from_version", resident.KeyVersion),
				)
			case ok:
				migrated.Add(1)
			default:
				skipped.Add(1)
			}
		})
	}
	pool.StopAndWait()

	cursor.LastResidentID = residents[len(residents)-1].ID
	cursor.Migrated += migrated.Load()
	if err := w.saveCursorWithRetry(ctx, cursor); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Rekey batch completed",
		zap.Duration("duration", w.clock.Since(startTime)),
		zap.Int("batch", len(residents)),
		zap.Uint64("migrated", migrated.Load()),
		zap.Uint64("skipped", skipped.Load()),
		zap.Uint64("failed", failed.Load()),
		zap.Uint64("last_resident_id", cursor.LastResidentID),
	)
	return nil
}

// loadCursor resumes the persisted cursor, restarting it when the target
// version has moved since the previous run
func (w *worker) loadCursor(ctx context.Context, target int) (*schema.RekeyCursor, error) {
	cursor, err := w.store.GetRekeyCursor(ctx, w.config.KeyName)
	if err != nil {
		return nil, fmt.Errorf("failed to load rekey cursor: %w", err)
	}
	if cursor != nil && cursor.TargetVersion == target {
		return cursor, nil
	}

	cursor = &schema.RekeyCursor{
		KeyName:       w.config.KeyName,
		TargetVersion: target,
	}
	if err := w.store.SaveRekeyCursor(ctx, cursor); err != nil {
		return nil, fmt.Errorf("failed to reset rekey cursor: %w", err)
	}
	logger.InfoCtx(ctx, "Rekey cursor reset for new target version",
		zap.String("key_name", w.config.KeyName),
		zap.Int("target_version", target),
	)
	return cursor, nil
}

// rekeyResident re-encrypts every sealed column of one resident under the
// active key. The conditional write drops the result when a concurrent
// registrar write already refreshed the row, so both sides stay consistent
// without locking.
func (w *worker) rekeyResident(ctx context.Context, resident *schema.Resident, target int) (bool, error) {
	from := resident.KeyVersion
	if from == target {
		return false, nil
	}

	reseal := func(ciphertext []byte, hash *string) ([]byte, error) {
		if len(ciphertext) == 0 {
			return ciphertext, nil
		}
		if hash == nil {
			sealed, _, err := w.vault.Reencrypt(ctx, ciphertext, from)
			return sealed, err
		}
		sealed, rehashed, _, err := w.vault.ReencryptWithHash(ctx, ciphertext, from)
		if err != nil {
			return nil, err
		}
		*hash = rehashed
		return sealed, nil
	}

	var err error
	if resident.GivenNameCipher, err = reseal(resident.GivenNameCipher, &resident.GivenNameHash); err != nil {
		return false, fmt.Errorf("failed to rekey given name: %w", err)
	}
	if resident.MiddleNameCipher, err = reseal(resident.MiddleNameCipher, &resident.MiddleNameHash); err != nil {
		return false, fmt.Errorf("failed to rekey middle name: %w", err)
	}
	if resident.FamilyNameCipher, err = reseal(resident.FamilyNameCipher, &resident.FamilyNameHash); err != nil {
		return false, fmt.Errorf("failed to rekey family name: %w", err)
	}
	if resident.FullNameCipher, err = reseal(resident.FullNameCipher, nil); err != nil {
		return false, fmt.Errorf("failed to rekey full name: %w", err)
	}
	if resident.GovernmentIDCipher, err = reseal(resident.GovernmentIDCipher, &resident.GovernmentIDHash); err != nil {
		return false, fmt.Errorf("failed to rekey government id: %w", err)
	}
	if resident.MobileCipher, err = reseal(resident.MobileCipher, &resident.MobileHash); err != nil {
		return false, fmt.Errorf("failed to rekey mobile: %w", err)
	}
	if resident.EmailCipher, err = reseal(resident.EmailCipher, &resident.EmailHash); err != nil {
		return false, fmt.Errorf("failed to rekey email: %w", err)
	}
	if resident.MotherMaidenCipher, err = reseal(resident.MotherMaidenCipher, &resident.MotherMaidenHash); err != nil {
		return false, fmt.Errorf("failed to rekey mother maiden name: %w", err)
	}
	resident.KeyVersion = target

	applied, err := w.store.ApplyResidentRekey(ctx, resident, from)
	if err != nil {
		return false, fmt.Errorf("failed to apply rekey for resident %s: %w", resident.ExternalID, err)
	}
	if !applied {
		return false, nil
	}

	// One journal row per migrated record stands in for the per-field
	// decrypt audit the registrar read path writes
	meta := datatypes.JSON(fmt.Sprintf(`{"from_version":%d,"to_version":%d}`, from, target))
	if err := w.store.AppendChange(ctx, &schema.ChangesJournal{
		SubjectType:  domain.ChangeSubjectResident,
		SubjectID:    resident.ExternalID,
		BarangayCode: resident.BarangayCode,
		Operation:    "rekey",
		PrincipalID:  rekeyPrincipal,
		Meta:         meta,
		ChangedAt:    w.clock.Now(),
	}); err != nil {
		return false, fmt.Errorf("failed to journal rekey for resident %s: %w", resident.ExternalID, err)
	}
	return true, nil
}

// saveCursorWithRetry persists progress with exponential backoff so a brief
// database hiccup does not lose a completed batch
func (w *worker) saveCursorWithRetry(ctx context.Context, cursor *schema.RekeyCursor) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Rekey cursor save failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	operation := func() error {
		return w.store.SaveRekeyCursor(ctx, cursor)
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to save rekey cursor after %d attempts: %w", attemptCount, err)
	}
	return nil
}

// sleep waits for the duration unless interrupted by cancellation or Stop.
// Returns false when interrupted.
func (w *worker) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-w.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-w.stopChan:
		return false
	}
}
