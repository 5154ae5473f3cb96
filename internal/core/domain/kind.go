package domain

// IconKind identifies one of the icon variants the export can produce for an
// item type. The set is closed; publishers and the service metadata rely on
// the serialized tags staying stable.
type IconKind int

const (
	// KindIcon is the regular 64x64 inventory icon.
	KindIcon IconKind = iota
	// KindBlueprint is the blueprint-original icon. For types whose blueprint
	// art comes from the graphic folder this shares its file with KindIcon.
	KindBlueprint
	// KindBlueprintCopy is the blueprint-copy icon.
	KindBlueprintCopy
	// KindReaction is the industry reaction formula icon.
	KindReaction
	// KindRelic is the ancient relic icon.
	KindRelic
	// KindRender is the 512x512 3D render.
	KindRender

	kindCount
)

// kindTable is the single source of truth for per-kind naming and output
// format. Render is the only kind distributed as JPEG; everything else is PNG.
var kindTable = [kindCount]struct {
	name string
	tag  string
	ext  string
}{
	KindIcon:          {name: "Icon", tag: "icon", ext: ".png"},
	KindBlueprint:     {name: "Blueprint", tag: "bp", ext: ".png"},
	KindBlueprintCopy: {name: "BlueprintCopy", tag: "bpc", ext: ".png"},
	KindReaction:      {name: "Reaction", tag: "reaction", ext: ".png"},
	KindRelic:         {name: "Relic", tag: "relic", ext: ".png"},
	KindRender:        {name: "Render", tag: "render", ext: ".jpg"},
}

// String returns the human-readable kind name.
func (k IconKind) String() string { return kindTable[k].name }

// Tag returns the serialized tag used in manifests and service metadata.
func (k IconKind) Tag() string { return kindTable[k].tag }

// Ext returns the target file extension for the kind, including the dot.
func (k IconKind) Ext() string { return kindTable[k].ext }

// MarshalText serializes the kind as its tag for JSON object keys.
func (k IconKind) MarshalText() ([]byte, error) {
	return []byte(kindTable[k].tag), nil
}

// Kinds returns all icon kinds in declaration order.
func Kinds() []IconKind {
	kinds := make([]IconKind, 0, kindCount)
	for k := IconKind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
