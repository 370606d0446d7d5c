package schema

import (
	"time"

	"github.com/openbarangay/registry/internal/domain"
)

// OccupationNode represents the occupation_nodes table - one node of the
// 5-level occupational classification tree. Same lifecycle as GeoNode.
type OccupationNode struct {
	// Code is the classification code; the level has its own code domain
	Code string `gorm:"column:code;primaryKey;type:text"`
	// Name is the official group name
	Name string `gorm:"column:name;not null;type:text;index:idx_occupation_nodes_level_name,priority:2"`
	// Level is the classification level (major .. unit_subgroup)
	Level domain.OccupationLevel `gorm:"column:level;not null;type:text;index:idx_occupation_nodes_level_name,priority:1"`
	// ParentCode references the group one level up, nil at the major level
	ParentCode *string `gorm:"column:parent_code;type:text;index"`
	// Active marks whether the node is current
	Active bool `gorm:"column:active;not null;default:true"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the OccupationNode model
func (OccupationNode) TableName() string {
	return "occupation_nodes"
}

// OccupationTitle represents the occupation_titles table - leaf-level position
// title aliases that map many-to-one onto a unit group.
type OccupationTitle struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the position title alias exactly as published
	Title string `gorm:"column:title;not null;type:text;uniqueIndex:idx_occupation_titles_pair,priority:1"`
	// UnitGroupCode is the unit group the alias belongs to
	UnitGroupCode string `gorm:"column:unit_group_code;not null;type:text;uniqueIndex:idx_occupation_titles_pair,priority:2;index"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the OccupationTitle model
func (OccupationTitle) TableName() string {
	return "occupation_titles"
}

// OccupationCrossRef represents the occupation_cross_refs table - edges linking
// related occupations across tree branches.
type OccupationCrossRef struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FromCode and ToCode are the linked classification codes
	FromCode string `gorm:"column:from_code;not null;type:text;uniqueIndex:idx_occupation_cross_refs_pair,priority:1"`
	ToCode   string `gorm:"column:to_code;not null;type:text;uniqueIndex:idx_occupation_cross_refs_pair,priority:2"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the OccupationCrossRef model
func (OccupationCrossRef) TableName() string {
	return "occupation_cross_refs"
}
