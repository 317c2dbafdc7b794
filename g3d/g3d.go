package g3d

import "github.com/vimaec/vim/bfast"

const defaultMetadata = `{ "filetype": "g3d" }`

// G3d is a set of attributes plus a free-form metadata string, the
// in-memory form of a G3D container (spec §3.2, §4.2).
type G3d struct {
	Metadata   string
	Attributes []Attribute
}

// New constructs an empty G3d with the default metadata string.
func New() *G3d {
	return &G3d{Metadata: defaultMetadata}
}

// AddAttribute appends an attribute built from a descriptor and payload,
// validating the element-alignment invariant.
func (g *G3d) AddAttribute(desc Descriptor, payload AttributePayload) error {
	attr, err := NewAttribute(desc, payload)
	if err != nil {
		return err
	}
	g.Attributes = append(g.Attributes, attr)
	return nil
}

// ToBFast packs the G3d into a BFAST container: buffer 0 holds the
// metadata string, each subsequent buffer is an attribute named by its
// descriptor's string form (spec §4.2's write path).
func (g *G3d) ToBFast() *bfast.Bfast {
	b := &bfast.Bfast{}
	b.Add("meta", []byte(g.Metadata))
	for _, attr := range g.Attributes {
		b.Add(attr.Descriptor.String(), attr.Payload.Bytes())
	}
	return b
}

// FromBFast decodes a BFAST container as G3D: buffer 0 becomes the
// metadata string, each remaining buffer's name is parsed as a descriptor
// and its bytes become the attribute's (borrowed) payload. Insertion order
// is preserved (spec §4.2's read path).
func FromBFast(b *bfast.Bfast) (*G3d, error) {
	if len(b.Buffers) == 0 {
		return &G3d{}, nil
	}

	g := &G3d{Metadata: string(b.Buffers[0].Data)}
	g.Attributes = make([]Attribute, 0, len(b.Buffers)-1)
	for _, buf := range b.Buffers[1:] {
		attr, err := attributeFromBuffer(buf.Name, buf.Data)
		if err != nil {
			return nil, err
		}
		g.Attributes = append(g.Attributes, attr)
	}
	return g, nil
}

// ReadFile reads a G3D container from disk.
func ReadFile(path string) (*G3d, error) {
	b, err := bfast.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBFast(b)
}

// WriteFile packs and writes a G3D container to disk.
func (g *G3d) WriteFile(path string) error {
	return g.ToBFast().WriteFile(path)
}
