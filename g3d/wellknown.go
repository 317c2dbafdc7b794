package g3d

import "fmt"

// Well-known descriptor templates, ported from g3d.h's inline attribute
// name constants and extended with the index token the six-token grammar
// adds (spec §4.2, §9 — "compile-time table of (field, template) pairs",
// not a runtime registry). Each is a printf-style template taking the
// disambiguating index as its one argument.
const (
	PositionTemplate         = "g3d:vertex:position:%d:float32:3"
	IndexTemplate            = "g3d:corner:index:%d:int32:1"
	UVTemplate               = "g3d:vertex:uv:%d:float32:2"
	UVWTemplate              = "g3d:vertex:uv:%d:float32:3"
	VertexNormalTemplate     = "g3d:vertex:normal:%d:float32:3"
	FaceNormalTemplate       = "g3d:face:normal:%d:float32:3"
	ObjectFaceSizeTemplate   = "g3d:all:facesize:%d:int32:1"
	GroupFaceSizeTemplate    = "g3d:group:facesize:%d:int32:1"
	FaceSizeTemplate         = "g3d:face:facesize:%d:int32:1"
	FaceIndexOffsetTemplate  = "g3d:face:indexoffset:%d:int32:1"
	VertexColorTemplate      = "g3d:vertex:color:%d:float32:3"
	VertexColorAlphaTemplate = "g3d:vertex:color:%d:float32:4"
	BitangentTemplate        = "g3d:vertex:bitangent:%d:float32:3"
	Tangent3Template         = "g3d:vertex:tangent:%d:float32:3"
	Tangent4Template         = "g3d:vertex:tangent:%d:float32:4"
	GroupIndexOffsetTemplate = "g3d:group:indexoffset:%d:int32:1"
	MaterialIDTemplate       = "g3d:face:materialid:%d:int32:1"
)

// WellKnown is the compile-time (field, template) table spec.md §4.2/§9
// commits to: each entry's template is the same printf-style string the
// matching formatter function below applies, keyed by field name for
// callers that want to enumerate or look one up by name rather than call
// the formatter directly.
var WellKnown = map[string]string{
	"Position":         PositionTemplate,
	"Index":            IndexTemplate,
	"UV":               UVTemplate,
	"UVW":              UVWTemplate,
	"VertexNormal":     VertexNormalTemplate,
	"FaceNormal":       FaceNormalTemplate,
	"ObjectFaceSize":   ObjectFaceSizeTemplate,
	"GroupFaceSize":    GroupFaceSizeTemplate,
	"FaceSize":         FaceSizeTemplate,
	"FaceIndexOffset":  FaceIndexOffsetTemplate,
	"VertexColor":      VertexColorTemplate,
	"VertexColorAlpha": VertexColorAlphaTemplate,
	"Bitangent":        BitangentTemplate,
	"Tangent3":         Tangent3Template,
	"Tangent4":         Tangent4Template,
	"GroupIndexOffset": GroupIndexOffsetTemplate,
	"MaterialID":       MaterialIDTemplate,
}

// Position formats the standard position-attribute descriptor string at
// the given disambiguating index.
func Position(index int) string { return fmt.Sprintf(PositionTemplate, index) }

// Index formats the standard corner-index descriptor string.
func Index(index int) string { return fmt.Sprintf(IndexTemplate, index) }

// UV formats the standard 2-component UV descriptor string.
func UV(index int) string { return fmt.Sprintf(UVTemplate, index) }

// UVW formats the standard 3-component UV descriptor string.
func UVW(index int) string { return fmt.Sprintf(UVWTemplate, index) }

// VertexNormal formats the standard per-vertex normal descriptor string.
func VertexNormal(index int) string { return fmt.Sprintf(VertexNormalTemplate, index) }

// FaceNormal formats the standard per-face normal descriptor string.
func FaceNormal(index int) string { return fmt.Sprintf(FaceNormalTemplate, index) }

// ObjectFaceSize formats the standard object-level face-size descriptor string.
func ObjectFaceSize(index int) string { return fmt.Sprintf(ObjectFaceSizeTemplate, index) }

// GroupFaceSize formats the standard group-level face-size descriptor string.
func GroupFaceSize(index int) string { return fmt.Sprintf(GroupFaceSizeTemplate, index) }

// FaceSize formats the standard per-face face-size descriptor string.
func FaceSize(index int) string { return fmt.Sprintf(FaceSizeTemplate, index) }

// FaceIndexOffset formats the standard per-face index-offset descriptor string.
func FaceIndexOffset(index int) string { return fmt.Sprintf(FaceIndexOffsetTemplate, index) }

// VertexColor formats the standard 3-component vertex color descriptor string.
func VertexColor(index int) string { return fmt.Sprintf(VertexColorTemplate, index) }

// VertexColorAlpha formats the standard 4-component vertex color descriptor string.
func VertexColorAlpha(index int) string { return fmt.Sprintf(VertexColorAlphaTemplate, index) }

// Bitangent formats the standard bitangent descriptor string.
func Bitangent(index int) string { return fmt.Sprintf(BitangentTemplate, index) }

// Tangent3 formats the standard 3-component tangent descriptor string.
func Tangent3(index int) string { return fmt.Sprintf(Tangent3Template, index) }

// Tangent4 formats the standard 4-component tangent descriptor string.
func Tangent4(index int) string { return fmt.Sprintf(Tangent4Template, index) }

// GroupIndexOffset formats the standard group-level index-offset descriptor string.
func GroupIndexOffset(index int) string { return fmt.Sprintf(GroupIndexOffsetTemplate, index) }

// MaterialID formats the standard per-face material-id descriptor string.
func MaterialID(index int) string { return fmt.Sprintf(MaterialIDTemplate, index) }
