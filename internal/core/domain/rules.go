package domain

// RuleSet holds the classification rule data that has changed across game
// revisions. The defaults match the current game data, but both group sets
// can be overridden from a rules file without a rebuild.
type RuleSet struct {
	// ReactionGroups are the industry "reaction" blueprint groups, which use
	// a different background than regular blueprints.
	ReactionGroups map[int32]bool
	// FlatIconGroups are groups whose types have 3D models and a graphic id,
	// but use a flat 2D icon for their inventory icon.
	FlatIconGroups map[int32]bool
	// TechOverlays maps meta-group id to the tech-tier badge resource.
	// Meta groups without an entry get no badge.
	TechOverlays map[int32]string
}

// DefaultRules returns the rule data observed in the current game data.
func DefaultRules() *RuleSet {
	return &RuleSet{
		ReactionGroups: map[int32]bool{
			1888: true,
			1889: true,
			1890: true,
			4097: true,
		},
		FlatIconGroups: map[int32]bool{
			12:   true,
			340:  true,
			448:  true,
			548:  true,
			649:  true,
			711:  true,
			4168: true,
		},
		TechOverlays: map[int32]string{
			2:  "res:/ui/texture/icons/73_16_242.png",
			3:  "res:/ui/texture/icons/73_16_245.png",
			4:  "res:/ui/texture/icons/73_16_246.png",
			5:  "res:/ui/texture/icons/73_16_248.png",
			6:  "res:/ui/texture/icons/73_16_247.png",
			14: "res:/ui/texture/icons/73_16_243.png",
			15: "res:/ui/texture/icons/itemoverlay/abyssal.png",
			17: "res:/ui/texture/icons/itemoverlay/nes.png",
			19: "res:/ui/texture/icons/itemoverlay/timelimited.png",
			52: "res:/ui/texture/shared/structureoverlayfaction.png",
			53: "res:/ui/texture/shared/structureoverlayt2.png",
			54: "res:/ui/texture/shared/structureoverlay.png",
		},
	}
}

// TechOverlayFor returns the tech-tier badge resource for a meta group, or an
// empty string when the tier has no badge. An unset meta group defaults to 1
// (tech 1), which carries no badge.
func (r *RuleSet) TechOverlayFor(metaGroupID int32) string {
	if metaGroupID == 0 {
		metaGroupID = 1
	}
	return r.TechOverlays[metaGroupID]
}
