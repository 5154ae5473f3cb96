// Package domain holds the core data model for the icon export pipeline.
package domain

import "sort"

// Item category ids with dedicated classification rules.
const (
	CategoryBlueprint int32 = 9
	CategoryReaction  int32 = 34
	CategorySkin      int32 = 91
)

// TypeInfo holds the classification inputs for a single item type. Ids are
// positive in the game data, so zero marks an absent field.
type TypeInfo struct {
	GroupID     int32
	IconID      int32 // 0 when the type has no 2D icon
	GraphicID   int32 // 0 when the type has no 3D graphic
	MetaGroupID int32 // 0 when unset; classification defaults it to 1
}

// IconBuildData is the full classification input for one run: every item type
// plus the four lookup tables resolved from the static data export. It is
// read-only for the duration of a run.
type IconBuildData struct {
	// Types maps type id to its classification inputs.
	Types map[int32]TypeInfo
	// GroupCategories maps group id to category id.
	GroupCategories map[int32]int32
	// IconFiles maps icon id to a res:/ resource key.
	IconFiles map[int32]string
	// GraphicFolders maps graphic id to the resource folder holding its icons.
	GraphicFolders map[int32]string
	// SkinMaterials maps skin license type id to skin material id.
	SkinMaterials map[int32]int32
}

// SortedTypeIDs returns all type ids in ascending order, so that runs iterate
// deterministically.
func (d *IconBuildData) SortedTypeIDs() []int32 {
	ids := make([]int32, 0, len(d.Types))
	for id := range d.Types {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
