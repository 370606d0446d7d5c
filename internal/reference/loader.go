package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

// GeoSeedEntry is one row of a geography seed file
type GeoSeedEntry struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	ParentCode *string `json:"parent_code"`
}

// OccupationSeedFile is the layout of an occupation seed file
type OccupationSeedFile struct {
	Groups []struct {
		Code       string  `json:"code"`
		Name       string  `json:"name"`
		ParentCode *string `json:"parent_code"`
	} `json:"groups"`
	Titles []struct {
		Title         string `json:"title"`
		UnitGroupCode string `json:"unit_group_code"`
	} `json:"titles"`
	CrossRefs []struct {
		FromCode string `json:"from_code"`
		ToCode   string `json:"to_code"`
	} `json:"cross_refs"`
}

// Loader reads reference seed files and upserts them into the store
type Loader struct {
	store store.Store
	fs    adapter.FileSystem
	json  adapter.JSON
}

// NewLoader creates a seed loader
func NewLoader(s store.Store, fs adapter.FileSystem, js adapter.JSON) *Loader {
	return &Loader{store: s, fs: fs, json: js}
}

// LoadGeo reads a geography seed file and upserts its rows. Levels are derived
// from code length; rows with malformed codes fail the whole load.
func (l *Loader) LoadGeo(ctx context.Context, filePath string) (int, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read geo seed file: %w", err)
	}

	var entries []GeoSeedEntry
	if err := l.json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse geo seed JSON: %w", err)
	}

	nodes := make([]schema.GeoNode, 0, len(entries))
	for _, entry := range entries {
		level, err := domain.GeoCode(entry.Code).Level()
		if err != nil {
			return 0, fmt.Errorf("geo seed row %q: %w", entry.Code, err)
		}
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return 0, fmt.Errorf("%w: geo seed row %q has an empty name", domain.ErrInvalidArgument, entry.Code)
		}
		nodes = append(nodes, schema.GeoNode{
			Code:       entry.Code,
			Name:       name,
			Level:      level,
			ParentCode: entry.ParentCode,
			Active:     true,
		})
	}

	if err := l.store.UpsertGeoNodes(ctx, nodes); err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// LoadOccupation reads an occupation seed file and upserts groups, titles, and
// cross references
func (l *Loader) LoadOccupation(ctx context.Context, filePath string) (int, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read occupation seed file: %w", err)
	}

	var file OccupationSeedFile
	if err := l.json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse occupation seed JSON: %w", err)
	}

	nodes := make([]schema.OccupationNode, 0, len(file.Groups))
	for _, group := range file.Groups {
		level, err := domain.OccupationCode(group.Code).Level()
		if err != nil {
			return 0, fmt.Errorf("occupation seed group %q: %w", group.Code, err)
		}
		name := strings.TrimSpace(group.Name)
		if name == "" {
			return 0, fmt.Errorf("%w: occupation seed group %q has an empty name", domain.ErrInvalidArgument, group.Code)
		}
		nodes = append(nodes, schema.OccupationNode{
			Code:       group.Code,
			Name:       name,
			Level:      level,
			ParentCode: group.ParentCode,
			Active:     true,
		})
	}

	titles := make([]schema.OccupationTitle, 0, len(file.Titles))
	for _, title := range file.Titles {
		if strings.TrimSpace(title.Title) == "" {
			return 0, fmt.Errorf("%w: occupation seed title for %q is empty", domain.ErrInvalidArgument, title.UnitGroupCode)
		}
		titles = append(titles, schema.OccupationTitle{
			Title:         strings.TrimSpace(title.Title),
			UnitGroupCode: title.UnitGroupCode,
		})
	}

	refs := make([]schema.OccupationCrossRef, 0, len(file.CrossRefs))
	for _, ref := range file.CrossRefs {
		refs = append(refs, schema.OccupationCrossRef{
			FromCode: ref.FromCode,
			ToCode:   ref.ToCode,
		})
	}

	err = l.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.UpsertOccupationNodes(ctx, nodes); err != nil {
			return err
		}
		if err := tx.UpsertOccupationTitles(ctx, titles); err != nil {
			return err
		}
		return tx.UpsertOccupationCrossRefs(ctx, refs)
	})
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}
