package vim

import (
	"github.com/vimaec/vim/bfast"
	"github.com/vimaec/vim/g3d"
)

// Scene is a fully decoded VIM file: header fields and version, node
// table, string pool, geometry (as G3D), opaque assets, and entity
// tables, each keyed by the top-level BFAST section that produced it
// (spec §3.3, §4.3).
type Scene struct {
	Header   Header
	Nodes    []Node
	Strings  []string
	Geometry *g3d.G3d
	Assets   map[string][]byte

	EntityTables     map[string]EntityTable
	entityTableOrder []string
}

// EntityTableNames returns entity table names in their on-disk order.
func (s *Scene) EntityTableNames() []string {
	return s.entityTableOrder
}

// ReadFile reads and decodes a VIM scene from disk, returning the scene
// and a non-throwing ErrorCode outcome (spec §4.3's public contract). A
// nil Scene is returned alongside any ErrorCode other than Success and
// NoVersionInfo.
func ReadFile(path string) (*Scene, ErrorCode) {
	b, err := bfast.ReadFile(path)
	if err != nil {
		return nil, FileNotRecognized
	}
	return decodeScene(b)
}

// decodeScene dispatches over a parsed top-level BFAST's named buffers
// (spec §4.3 step 2). Buffers with unrecognized names are ignored for
// forward compatibility (spec §4.3 step 3, §7).
func decodeScene(b *bfast.Bfast) (*Scene, ErrorCode) {
	s := &Scene{
		Header: newHeader(),
		Assets: map[string][]byte{},
	}
	noVersion := false

	for _, buf := range b.Buffers {
		switch buf.Name {
		case "header":
			s.Header = parseHeader(buf.Data)
			if !s.Header.HasVersion {
				noVersion = true
			}

		case "nodes":
			s.Nodes = decodeNodes(buf.Data)

		case "strings":
			strs, err := decodeStrings(buf.Data)
			if err != nil {
				return nil, Failed
			}
			s.Strings = strs

		case "geometry":
			inner, err := bfast.Unpack(buf.Data)
			if err != nil {
				return nil, GeometryLoadingException
			}
			geom, err := g3d.FromBFast(inner)
			if err != nil {
				return nil, GeometryLoadingException
			}
			s.Geometry = geom

		case "assets":
			inner, err := bfast.Unpack(buf.Data)
			if err != nil {
				return nil, AssetLoadingException
			}
			for _, asset := range inner.Buffers {
				s.Assets[asset.Name] = asset.Data
			}

		case "entities":
			tables, order, err := decodeEntities(buf.Data)
			if err != nil {
				return nil, EntityLoadingException
			}
			s.EntityTables = tables
			s.entityTableOrder = order
		}
	}

	if noVersion {
		return s, NoVersionInfo
	}
	return s, Success
}
