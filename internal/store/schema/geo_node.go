package schema

import (
	"time"

	"github.com/openbarangay/registry/internal/domain"
)

// GeoNode represents the geo_nodes table - one node of the 4-level
// administrative geography tree. Seeded from the authoritative government
// dataset; practically immutable and soft-deactivated only, since historical
// records keep referencing retired nodes.
type GeoNode struct {
	// Code is the hierarchical geographic code; ancestry is encoded by prefix
	Code string `gorm:"column:code;primaryKey;type:text"`
	// Name is the human-readable place name
	Name string `gorm:"column:name;not null;type:text;index:idx_geo_nodes_level_name,priority:2"`
	// Level is the administrative level (region, province, city, barangay)
	Level domain.GeoLevel `gorm:"column:level;not null;type:text;index:idx_geo_nodes_level_name,priority:1"`
	// ParentCode references the node one level up. Nil for regions and for
	// independent cities, which skip the province level.
	ParentCode *string `gorm:"column:parent_code;type:text;index"`
	// Active marks whether the node is current; retired nodes stay for history
	Active bool `gorm:"column:active;not null;default:true"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the GeoNode model
func (GeoNode) TableName() string {
	return "geo_nodes"
}
