package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates all registry tables. Used by the seeder and the
// test harness; production deployments run it once at rollout.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.GeoNode{},
		&schema.OccupationNode{},
		&schema.OccupationTitle{},
		&schema.OccupationCrossRef{},
		&schema.Subdivision{},
		&schema.Street{},
		&schema.SequenceCounter{},
		&schema.Household{},
		&schema.Resident{},
		&schema.HouseholdMembership{},
		&schema.EncryptionKey{},
		&schema.DecryptAuditLog{},
		&schema.ChangesJournal{},
		&schema.RekeyCursor{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: MaxOpenConns 20,
// MaxIdleConns 5, ConnMaxLifetime 5m, ConnMaxIdleTime 10m.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

func (s *pgStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// scoped narrows a query to rows whose location column falls under the scope
// prefix. National scope applies no filter.
func scoped(q *gorm.DB, column string, scope domain.Scope) *gorm.DB {
	if prefix := scope.Prefix(); prefix != "" {
		q = q.Where(column+" LIKE ?", escapeLike(prefix)+"%")
	}
	return q
}

// escapeLike neutralizes LIKE metacharacters in user-supplied terms
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	return strings.ReplaceAll(term, "_", `\_`)
}

// rankedNameOrder sorts exact name matches first, then prefix matches, then
// substring matches, with a stable tiebreak.
func rankedNameOrder(term, tiebreak string) clause.OrderBy {
	return clause.OrderBy{
		Expression: clause.Expr{
			SQL:                "CASE WHEN lower(name) = lower(?) THEN 0 WHEN name ILIKE ? THEN 1 ELSE 2 END, name, " + tiebreak,
			Vars:               []interface{}{term, escapeLike(term) + "%"},
			WithoutParentheses: true,
		},
	}
}

// --- Reference hierarchy ---

func (s *pgStore) GetGeoNode(ctx context.Context, code domain.GeoCode) (*schema.GeoNode, error) {
	var node schema.GeoNode
	err := s.db.WithContext(ctx).Where("code = ?", string(code)).First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geo node: %w", err)
	}
	return &node, nil
}

func (s *pgStore) GetGeoNodes(ctx context.Context, codes []domain.GeoCode) (map[domain.GeoCode]*schema.GeoNode, error) {
	if len(codes) == 0 {
		return map[domain.GeoCode]*schema.GeoNode{}, nil
	}

	raw := make([]string, 0, len(codes))
	for _, code := range codes {
		raw = append(raw, string(code))
	}

	var nodes []schema.GeoNode
	if err := s.db.WithContext(ctx).Where("code IN ?", raw).Find(&nodes).Error; err != nil {
		return nil, fmt.Errorf("failed to get geo nodes: %w", err)
	}

	result := make(map[domain.GeoCode]*schema.GeoNode, len(nodes))
	for i := range nodes {
		result[domain.GeoCode(nodes[i].Code)] = &nodes[i]
	}
	return result, nil
}

func (s *pgStore) SearchGeoNodes(ctx context.Context, filter GeoSearchFilter) ([]schema.GeoNode, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.GeoNode{}).
		Where("active = ?", true).
		Where("name ILIKE ?", "%"+escapeLike(filter.Term)+"%")

	if filter.Level != nil {
		query = query.Where("level = ?", *filter.Level)
	}
	if filter.ParentCode != nil {
		query = query.Where("parent_code = ?", *filter.ParentCode)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count geo nodes: %w", err)
	}

	var nodes []schema.GeoNode
	err := query.
		Clauses(rankedNameOrder(filter.Term, "code")).
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&nodes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search geo nodes: %w", err)
	}
	return nodes, uint64(total), nil //nolint:gosec
}

func (s *pgStore) UpsertGeoNodes(ctx context.Context, nodes []schema.GeoNode) error {
	if len(nodes) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "level", "parent_code", "active"}),
	}).CreateInBatches(nodes, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert geo nodes: %w", err)
	}
	return nil
}

func (s *pgStore) GetOccupationNode(ctx context.Context, code domain.OccupationCode) (*schema.OccupationNode, error) {
	var node schema.OccupationNode
	err := s.db.WithContext(ctx).Where("code = ?", string(code)).First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get occupation node: %w", err)
	}
	return &node, nil
}

func (s *pgStore) SearchOccupationNodes(ctx context.Context, filter OccupationSearchFilter) ([]schema.OccupationNode, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.OccupationNode{}).
		Where("active = ?", true).
		Where("name ILIKE ?", "%"+escapeLike(filter.Term)+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count occupation nodes: %w", err)
	}

	var nodes []schema.OccupationNode
	err := query.
		Clauses(rankedNameOrder(filter.Term, "code")).
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&nodes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search occupation nodes: %w", err)
	}
	return nodes, uint64(total), nil //nolint:gosec
}

func (s *pgStore) SearchOccupationTitles(ctx context.Context, term string, limit int) ([]schema.OccupationTitle, error) {
	var titles []schema.OccupationTitle
	err := s.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+escapeLike(term)+"%").
		Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "CASE WHEN lower(title) = lower(?) THEN 0 WHEN title ILIKE ? THEN 1 ELSE 2 END, title",
				Vars:               []interface{}{term, escapeLike(term) + "%"},
				WithoutParentheses: true,
			},
		}).
		Limit(limit).
		Find(&titles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search occupation titles: %w", err)
	}
	return titles, nil
}

func (s *pgStore) GetOccupationCrossRefs(ctx context.Context, code domain.OccupationCode) ([]schema.OccupationCrossRef, error) {
	var refs []schema.OccupationCrossRef
	err := s.db.WithContext(ctx).Where("from_code = ?", string(code)).Find(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get occupation cross refs: %w", err)
	}
	return refs, nil
}

func (s *pgStore) UpsertOccupationNodes(ctx context.Context, nodes []schema.OccupationNode) error {
	if len(nodes) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "level", "parent_code", "active"}),
	}).CreateInBatches(nodes, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert occupation nodes: %w", err)
	}
	return nil
}

func (s *pgStore) UpsertOccupationTitles(ctx context.Context, titles []schema.OccupationTitle) error {
	if len(titles) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "title"}, {Name: "unit_group_code"}},
		DoNothing: true,
	}).CreateInBatches(titles, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert occupation titles: %w", err)
	}
	return nil
}

func (s *pgStore) UpsertOccupationCrossRefs(ctx context.Context, refs []schema.OccupationCrossRef) error {
	if len(refs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_code"}, {Name: "to_code"}},
		DoNothing: true,
	}).CreateInBatches(refs, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert occupation cross refs: %w", err)
	}
	return nil
}

// --- Identity (sequence allocation) ---

// nextSequence increments and returns the counter for (barangayCode, scope,
// scopeKey), locking the counter row for the duration of the enclosing
// transaction. The counter row is created on first use.
func nextSequence(tx *gorm.DB, barangayCode domain.GeoCode, scope, scopeKey string) (int, error) {
	var counter schema.SequenceCounter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("barangay_code = ? AND scope = ? AND scope_key = ?", string(barangayCode), scope, scopeKey).
		First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := schema.SequenceCounter{
			BarangayCode: string(barangayCode),
			Scope:        scope,
			ScopeKey:     scopeKey,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return 0, fmt.Errorf("failed to seed sequence counter: %w", err)
		}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("barangay_code = ? AND scope = ? AND scope_key = ?", string(barangayCode), scope, scopeKey).
			First(&counter).Error
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock sequence counter: %w", err)
	}

	counter.LastSeq++
	err = tx.Model(&schema.SequenceCounter{}).
		Where("id = ?", counter.ID).
		Updates(map[string]interface{}{"last_seq": counter.LastSeq, "updated_at": time.Now()}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence counter: %w", err)
	}
	return counter.LastSeq, nil
}

func (s *pgStore) GetOrCreateSubdivision(ctx context.Context, barangayCode domain.GeoCode, name string) (*schema.Subdivision, error) {
	var result *schema.Subdivision
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub schema.Subdivision
		err := tx.Where("barangay_code = ? AND name = ?", string(barangayCode), name).First(&sub).Error
		if err == nil {
			result = &sub
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up subdivision: %w", err)
		}

		seq, err := nextSequence(tx, barangayCode, schema.CounterScopeSubdivision, "")
		if err != nil {
			return err
		}

		sub = schema.Subdivision{
			BarangayCode: string(barangayCode),
			Name:         name,
			Seq:          seq,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return fmt.Errorf("%w: failed to create subdivision: %v", domain.ErrConcurrencyConflict, err)
		}
		result = &sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *pgStore) GetOrCreateStreet(ctx context.Context, barangayCode domain.GeoCode, subdivisionID *uint64, name string) (*schema.Street, error) {
	var result *schema.Street
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lookup := tx.Where("barangay_code = ? AND name = ?", string(barangayCode), name)
		if subdivisionID != nil {
			lookup = lookup.Where("subdivision_id = ?", *subdivisionID)
		} else {
			lookup = lookup.Where("subdivision_id IS NULL")
		}

		var street schema.Street
		err := lookup.First(&street).Error
		if err == nil {
			result = &street
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up street: %w", err)
		}

		// Street numbering restarts inside each subdivision
		scopeKey := ""
		if subdivisionID != nil {
			scopeKey = fmt.Sprintf("subdivision:%d", *subdivisionID)
		}
		seq, err := nextSequence(tx, barangayCode, schema.CounterScopeStreet, scopeKey)
		if err != nil {
			return err
		}

		street = schema.Street{
			BarangayCode:  string(barangayCode),
			SubdivisionID: subdivisionID,
			Name:          name,
			Seq:           seq,
		}
		if err := tx.Create(&street).Error; err != nil {
			return fmt.Errorf("%w: failed to create street: %v", domain.ErrConcurrencyConflict, err)
		}
		result = &street
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *pgStore) GetSubdivision(ctx context.Context, id uint64) (*schema.Subdivision, error) {
	var sub schema.Subdivision
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subdivision: %w", err)
	}
	return &sub, nil
}

func (s *pgStore) GetStreet(ctx context.Context, id uint64) (*schema.Street, error) {
	var street schema.Street
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&street).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get street: %w", err)
	}
	return &street, nil
}

// --- Households ---

func (s *pgStore) CreateHousehold(ctx context.Context, household *schema.Household) error {
	if err := s.db.WithContext(ctx).Create(household).Error; err != nil {
		return fmt.Errorf("failed to create household: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateHousehold(ctx context.Context, household *schema.Household) error {
	household.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Omit("Memberships").Save(household).Error; err != nil {
		return fmt.Errorf("failed to update household: %w", err)
	}
	return nil
}

func (s *pgStore) GetHouseholdByID(ctx context.Context, id uint64) (*schema.Household, error) {
	var household schema.Household
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&household).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return &household, nil
}

func (s *pgStore) GetHouseholdByExternalID(ctx context.Context, externalID string, scope domain.Scope) (*schema.Household, error) {
	var household schema.Household
	err := scoped(s.db.WithContext(ctx), "barangay_code", scope).
		Where("external_id = ?", externalID).
		First(&household).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return &household, nil
}

func (s *pgStore) GetHouseholdByCode(ctx context.Context, code domain.HouseholdCode, scope domain.Scope) (*schema.Household, error) {
	var household schema.Household
	err := scoped(s.db.WithContext(ctx), "barangay_code", scope).
		Where("code = ?", string(code)).
		First(&household).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get household by code: %w", err)
	}
	return &household, nil
}

func (s *pgStore) SearchHouseholds(ctx context.Context, filter HouseholdSearchFilter) ([]schema.Household, uint64, error) {
	query := scoped(s.db.WithContext(ctx).Model(&schema.Household{}), "barangay_code", filter.Scope).
		Where("active = ?", true)

	if filter.Term != "" {
		pattern := "%" + escapeLike(filter.Term) + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count households: %w", err)
	}

	var households []schema.Household
	err := query.Order("code").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&households).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search households: %w", err)
	}
	return households, uint64(total), nil //nolint:gosec
}

func (s *pgStore) GetHouseholdMemberStats(ctx context.Context, householdID uint64) (MemberStats, error) {
	var stats MemberStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS member_count,
			COUNT(DISTINCT m.family_number) AS family_count,
			COUNT(*) FILTER (WHERE r.migrated_within_period) AS migrant_count
		FROM household_memberships m
		JOIN residents r ON r.id = m.resident_id
		WHERE m.household_id = ? AND m.active AND r.active
	`, householdID).Scan(&stats).Error
	if err != nil {
		return MemberStats{}, fmt.Errorf("failed to get household member stats: %w", err)
	}
	return stats, nil
}

func (s *pgStore) HouseholdHeadedBy(ctx context.Context, residentID uint64) (*schema.Household, error) {
	var household schema.Household
	err := s.db.WithContext(ctx).
		Where("head_resident_id = ? AND active = ?", residentID, true).
		First(&household).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get headed household: %w", err)
	}
	return &household, nil
}

// --- Residents and memberships ---

func (s *pgStore) CreateResident(ctx context.Context, resident *schema.Resident) error {
	if err := s.db.WithContext(ctx).Create(resident).Error; err != nil {
		return fmt.Errorf("failed to create resident: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateResident(ctx context.Context, resident *schema.Resident) error {
	resident.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Omit("Memberships").Save(resident).Error; err != nil {
		return fmt.Errorf("failed to update resident: %w", err)
	}
	return nil
}

func (s *pgStore) GetResidentByID(ctx context.Context, id uint64) (*schema.Resident, error) {
	var resident schema.Resident
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}
	return &resident, nil
}

func (s *pgStore) GetResidentByExternalID(ctx context.Context, externalID string, scope domain.Scope) (*schema.Resident, error) {
	var resident schema.Resident
	err := scoped(s.db.WithContext(ctx), "barangay_code", scope).
		Where("external_id = ?", externalID).
		First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}
	return &resident, nil
}

// hashColumns whitelists the searchable hash columns
var hashColumns = map[string]string{
	"given_name":    "given_name_hash",
	"family_name":   "family_name_hash",
	"government_id": "government_id_hash",
	"mobile":        "mobile_hash",
	"email":         "email_hash",
}

func (s *pgStore) FindResidentsByHash(ctx context.Context, field string, hash string, scope domain.Scope) ([]schema.Resident, error) {
	column, ok := hashColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q is not hash-searchable", domain.ErrInvalidArgument, field)
	}

	var residents []schema.Resident
	err := scoped(s.db.WithContext(ctx), "barangay_code", scope).
		Where(column+" = ? AND active = ?", hash, true).
		Order("id").
		Find(&residents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find residents by hash: %w", err)
	}
	return residents, nil
}

func (s *pgStore) GetActiveMembership(ctx context.Context, residentID uint64) (*schema.HouseholdMembership, error) {
	var membership schema.HouseholdMembership
	err := s.db.WithContext(ctx).
		Where("resident_id = ? AND active = ?", residentID, true).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active membership: %w", err)
	}
	return &membership, nil
}

func (s *pgStore) ListActiveMemberships(ctx context.Context, householdID uint64) ([]schema.HouseholdMembership, error) {
	var memberships []schema.HouseholdMembership
	err := s.db.WithContext(ctx).
		Where("household_id = ? AND active = ?", householdID, true).
		Order("id").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

func (s *pgStore) CreateMembership(ctx context.Context, membership *schema.HouseholdMembership) error {
	if err := s.db.WithContext(ctx).Create(membership).Error; err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

func (s *pgStore) EndMembership(ctx context.Context, membershipID uint64, endedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.HouseholdMembership{}).
		Where("id = ? AND active = ?", membershipID, true).
		Updates(map[string]interface{}{
			"active":     false,
			"ended_at":   endedAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to end membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: membership %d is not active", domain.ErrNotFound, membershipID)
	}
	return nil
}

// --- Encryption keys and audit ---

func (s *pgStore) GetActiveEncryptionKey(ctx context.Context, keyName string) (*schema.EncryptionKey, error) {
	var key schema.EncryptionKey
	err := s.db.WithContext(ctx).
		Where("key_name = ? AND active = ?", keyName, true).
		Order("version DESC").
		First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active encryption key: %w", err)
	}
	return &key, nil
}

func (s *pgStore) GetEncryptionKey(ctx context.Context, keyName string, version int) (*schema.EncryptionKey, error) {
	var key schema.EncryptionKey
	err := s.db.WithContext(ctx).
		Where("key_name = ? AND version = ?", keyName, version).
		First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get encryption key: %w", err)
	}
	return &key, nil
}

func (s *pgStore) CreateEncryptionKey(ctx context.Context, keyName string, material string) (*schema.EncryptionKey, error) {
	key := schema.EncryptionKey{
		KeyName:  keyName,
		Version:  1,
		Material: material,
		Active:   true,
	}
	if err := s.db.WithContext(ctx).Create(&key).Error; err != nil {
		return nil, fmt.Errorf("failed to create encryption key: %w", err)
	}
	return &key, nil
}

func (s *pgStore) RotateEncryptionKey(ctx context.Context, keyName string, material string) (*schema.EncryptionKey, error) {
	var next *schema.EncryptionKey
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current schema.EncryptionKey
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key_name = ? AND active = ?", keyName, true).
			Order("version DESC").
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: key %q has no active version", domain.ErrNoActiveKey, keyName)
			}
			return fmt.Errorf("failed to lock active encryption key: %w", err)
		}

		now := time.Now()
		err = tx.Model(&schema.EncryptionKey{}).
			Where("id = ?", current.ID).
			Updates(map[string]interface{}{"active": false, "rotated_at": now}).Error
		if err != nil {
			return fmt.Errorf("failed to retire encryption key: %w", err)
		}

		key := schema.EncryptionKey{
			KeyName:  keyName,
			Version:  current.Version + 1,
			Material: material,
			Active:   true,
		}
		if err := tx.Create(&key).Error; err != nil {
			return fmt.Errorf("failed to create next encryption key: %w", err)
		}
		next = &key
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (s *pgStore) CreateDecryptAudit(ctx context.Context, entry *schema.DecryptAuditLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create decrypt audit entry: %w", err)
	}
	return nil
}

// --- Changes journal ---

func (s *pgStore) AppendChange(ctx context.Context, change *schema.ChangesJournal) error {
	if err := s.db.WithContext(ctx).Create(change).Error; err != nil {
		return fmt.Errorf("failed to append change: %w", err)
	}
	return nil
}

func (s *pgStore) GetChanges(ctx context.Context, filter ChangesFilter) ([]schema.ChangesJournal, uint64, error) {
	query := scoped(s.db.WithContext(ctx).Model(&schema.ChangesJournal{}), "barangay_code", filter.Scope)

	if filter.SubjectType != nil {
		query = query.Where("subject_type = ?", *filter.SubjectType)
	}
	if filter.SubjectID != nil {
		query = query.Where("subject_id = ?", *filter.SubjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count changes: %w", err)
	}

	var changes []schema.ChangesJournal
	err := query.Order("id").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec
		Find(&changes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get changes: %w", err)
	}
	return changes, uint64(total), nil //nolint:gosec
}

// --- Rekey migration ---

func (s *pgStore) GetRekeyCursor(ctx context.Context, keyName string) (*schema.RekeyCursor, error) {
	var cursor schema.RekeyCursor
	err := s.db.WithContext(ctx).Where("key_name = ?", keyName).First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rekey cursor: %w", err)
	}
	return &cursor, nil
}

func (s *pgStore) SaveRekeyCursor(ctx context.Context, cursor *schema.RekeyCursor) error {
	cursor.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"target_version", "last_resident_id", "migrated", "updated_at",
		}),
	}).Create(cursor).Error
	if err != nil {
		return fmt.Errorf("failed to save rekey cursor: %w", err)
	}
	return nil
}

func (s *pgStore) ListResidentsBehindKeyVersion(ctx context.Context, targetVersion int, afterID uint64, limit int) ([]schema.Resident, error) {
	var residents []schema.Resident
	err := s.db.WithContext(ctx).
		Where("key_version < ? AND id > ?", targetVersion, afterID).
		Order("id").
		Limit(limit).
		Find(&residents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents behind key version: %w", err)
	}
	return residents, nil
}

func (s *pgStore) ApplyResidentRekey(ctx context.Context, resident *schema.Resident, expectedVersion int) (bool, error) {
	result := s.db.WithContext(ctx).Model(&schema.Resident{}).
		Where("id = ? AND key_version = ?", resident.ID, expectedVersion).
		Updates(map[string]interface{}{
			"given_name_cipher":    resident.GivenNameCipher,
			"given_name_hash":      resident.GivenNameHash,
			"middle_name_cipher":   resident.MiddleNameCipher,
			"middle_name_hash":     resident.MiddleNameHash,
			"family_name_cipher":   resident.FamilyNameCipher,
			"family_name_hash":     resident.FamilyNameHash,
			"full_name_cipher":     resident.FullNameCipher,
			"government_id_cipher": resident.GovernmentIDCipher,
			"government_id_hash":   resident.GovernmentIDHash,
			"mobile_cipher":        resident.MobileCipher,
			"mobile_hash":          resident.MobileHash,
			"email_cipher":         resident.EmailCipher,
			"email_hash":           resident.EmailHash,
			"mother_maiden_cipher": resident.MotherMaidenCipher,
			"mother_maiden_hash":   resident.MotherMaidenHash,
			"key_version":          resident.KeyVersion,
			"updated_at":           time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to apply resident rekey: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
