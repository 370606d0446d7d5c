package reference

import (
	"context"
	"fmt"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

// NamePathSegment is one level of a resolved hierarchy path
type NamePathSegment struct {
	Level string `json:"level"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

// OccupationMatch is one occupation search result. MatchedTitle is set when the
// hit came from a position-title alias rather than the group name itself.
type OccupationMatch struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Level        string  `json:"level"`
	MatchedTitle *string `json:"matched_title,omitempty"`
}

// Service resolves and searches the geographic and occupational reference
// hierarchies.
//
//go:generate mockgen -source=service.go -destination=../mocks/reference_service.go -package=mocks -mock_names=Service=MockReferenceService
type Service interface {
	// ResolveGeo expands a geography code into its name path, most general
	// first. Independent cities attach directly to their region, so the
	// province segment is simply absent from their paths.
	ResolveGeo(ctx context.Context, code domain.GeoCode) ([]NamePathSegment, error)

	// ResolveOccupation expands an occupation code into its name path, most
	// general first
	ResolveOccupation(ctx context.Context, code domain.OccupationCode) ([]NamePathSegment, error)

	// SearchGeo finds geography nodes by name
	SearchGeo(ctx context.Context, filter store.GeoSearchFilter) ([]schema.GeoNode, uint64, error)

	// SearchOccupation finds occupation groups by name or position title
	SearchOccupation(ctx context.Context, filter store.OccupationSearchFilter) ([]OccupationMatch, uint64, error)

	// OccupationCrossRefs lists related occupation codes
	OccupationCrossRefs(ctx context.Context, code domain.OccupationCode) ([]string, error)
}

type service struct {
	store store.Store
}

// NewService creates a reference service backed by the given store
func NewService(s store.Store) Service {
	return &service{store: s}
}

// maxGeoDepth bounds the parent-chain walk (region, province, city, barangay)
const maxGeoDepth = 4

func (s *service) ResolveGeo(ctx context.Context, code domain.GeoCode) ([]NamePathSegment, error) {
	if _, err := code.Level(); err != nil {
		return nil, err
	}

	// Walk parent pointers to the root instead of slicing code prefixes, so
	// independent cities (parented straight to a region) resolve without a
	// phantom province lookup.
	segments := make([]NamePathSegment, 0, maxGeoDepth)
	current := string(code)
	for depth := 0; current != ""; depth++ {
		if depth >= maxGeoDepth {
			return nil, fmt.Errorf("%w: geography hierarchy cycle at code %q", domain.ErrInvalidArgument, current)
		}

		node, err := s.store.GetGeoNode(ctx, domain.GeoCode(current))
		if err != nil {
			return nil, err
		}
		if node == nil {
			if depth == 0 {
				return nil, fmt.Errorf("%w: unknown geography code %q", domain.ErrNotFound, code)
			}
			return nil, fmt.Errorf("%w: geography code %q has a dangling ancestor %q", domain.ErrNotFound, code, current)
		}

		segments = append(segments, NamePathSegment{
			Level: string(node.Level),
			Code:  node.Code,
			Name:  node.Name,
		})
		if node.ParentCode == nil {
			break
		}
		current = *node.ParentCode
	}

	// Reverse into most-general-first order
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments, nil
}

func (s *service) ResolveOccupation(ctx context.Context, code domain.OccupationCode) ([]NamePathSegment, error) {
	if _, err := code.Level(); err != nil {
		return nil, err
	}

	// Occupation codes nest by length: every proper prefix is an ancestor
	segments := make([]NamePathSegment, 0, len(code))
	for length := 1; length <= len(code); length++ {
		prefix := domain.OccupationCode(code[:length])
		node, err := s.store.GetOccupationNode(ctx, prefix)
		if err != nil {
			return nil, err
		}
		if node == nil {
			if length == len(code) {
				return nil, fmt.Errorf("%w: unknown occupation code %q", domain.ErrNotFound, code)
			}
			return nil, fmt.Errorf("%w: occupation code %q has a dangling ancestor %q", domain.ErrNotFound, code, prefix)
		}
		segments = append(segments, NamePathSegment{
			Level: string(node.Level),
			Code:  node.Code,
			Name:  node.Name,
		})
	}
	return segments, nil
}

func (s *service) SearchGeo(ctx context.Context, filter store.GeoSearchFilter) ([]schema.GeoNode, uint64, error) {
	return s.store.SearchGeoNodes(ctx, filter)
}

func (s *service) SearchOccupation(ctx context.Context, filter store.OccupationSearchFilter) ([]OccupationMatch, uint64, error) {
	nodes, total, err := s.store.SearchOccupationNodes(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	matches := make([]OccupationMatch, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		matches = append(matches, OccupationMatch{
			Code:  node.Code,
			Name:  node.Name,
			Level: string(node.Level),
		})
		seen[node.Code] = true
	}

	// Position-title aliases supplement the first page; later pages stay
	// group-only so offsets remain consistent
	if filter.Offset == 0 && len(matches) < filter.Limit {
		titles, err := s.store.SearchOccupationTitles(ctx, filter.Term, filter.Limit-len(matches))
		if err != nil {
			return nil, 0, err
		}
		for _, title := range titles {
			if seen[title.UnitGroupCode] {
				continue
			}
			node, err := s.store.GetOccupationNode(ctx, domain.OccupationCode(title.UnitGroupCode))
			if err != nil {
				return nil, 0, err
			}
			if node == nil {
				continue
			}
			matched := title.Title
			matches = append(matches, OccupationMatch{
				Code:         node.Code,
				Name:         node.Name,
				Level:        string(node.Level),
				MatchedTitle: &matched,
			})
			seen[node.Code] = true
			total++
			if len(matches) >= filter.Limit {
				break
			}
		}
	}

	return matches, total, nil
}

func (s *service) OccupationCrossRefs(ctx context.Context, code domain.OccupationCode) ([]string, error) {
	refs, err := s.store.GetOccupationCrossRefs(ctx, code)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(refs))
	for _, ref := range refs {
		codes = append(codes, ref.ToCode)
	}
	return codes, nil
}
