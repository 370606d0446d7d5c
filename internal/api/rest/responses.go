package rest

import (
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/registrar"
	"github.com/openbarangay/registry/internal/store/schema"
)

// HouseholdListResponse is the envelope for household search results
type HouseholdListResponse struct {
	Households []registrar.HouseholdView `json:"households"`
	Total      uint64                    `json:"total"`
	Limit      int                       `json:"limit"`
	Offset     uint64                    `json:"offset"`
}

// ResidentListResponse is the envelope for resident equality-search results.
// Matches are always masked; no total is reported because the search is an
// exact hash lookup, not a paginated scan.
type ResidentListResponse struct {
	Residents []registrar.ResidentView `json:"residents"`
}

// ChangesResponse is the envelope for journal reads
type ChangesResponse struct {
	Changes []registrar.ChangeView `json:"changes"`
	Total   uint64                 `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  uint64                 `json:"offset"`
}

// GeoNodeView is one geography node in a search result
type GeoNodeView struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Level      string  `json:"level"`
	ParentCode *string `json:"parent_code,omitempty"`
	Active     bool    `json:"active"`
}

// GeoSearchResponse is the envelope for geography search results
type GeoSearchResponse struct {
	Nodes  []GeoNodeView `json:"nodes"`
	Total  uint64        `json:"total"`
	Limit  int           `json:"limit"`
	Offset uint64        `json:"offset"`
}

// GeoResolveResponse is a geography code expanded to its name path
type GeoResolveResponse struct {
	Code string                      `json:"code"`
	Path []reference.NamePathSegment `json:"path"`
}

// OccupationSearchResponse is the envelope for occupation search results
type OccupationSearchResponse struct {
	Matches []reference.OccupationMatch `json:"matches"`
	Total   uint64                      `json:"total"`
	Limit   int                         `json:"limit"`
	Offset  uint64                      `json:"offset"`
}

// OccupationResolveResponse is an occupation code expanded to its name path
// plus its cross-referenced codes
type OccupationResolveResponse struct {
	Code      string                      `json:"code"`
	Path      []reference.NamePathSegment `json:"path"`
	CrossRefs []string                    `json:"cross_refs,omitempty"`
}

// RotateKeyResponse reports the key version now active for new writes
type RotateKeyResponse struct {
	ActiveVersion int `json:"active_version"`
}

// HealthCheckResponse is the health endpoint body
type HealthCheckResponse struct {
	Status string `json:"status"`
}

func geoNodeView(n *schema.GeoNode) GeoNodeView {
	return GeoNodeView{
		Code:       n.Code,
		Name:       n.Name,
		Level:      string(n.Level),
		ParentCode: n.ParentCode,
		Active:     n.Active,
	}
}
