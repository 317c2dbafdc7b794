package g3d

import "github.com/vimaec/vim/internal/utils"

// AttributePayload is a tagged variant standing in for the source's
// abstract owning/referencing attribute-builder hierarchy (spec §9's
// design note): Owned holds memory the Attribute itself allocated,
// Borrowed slices memory someone else owns (typically the backing blob a
// BFAST container was unpacked from). Exactly one of Data is ever set;
// both cases expose the same byte slice through Bytes().
type AttributePayload struct {
	Data  []byte
	owned bool
}

// Owned wraps data as an attribute payload the Attribute itself owns.
func Owned(data []byte) AttributePayload {
	return AttributePayload{Data: data, owned: true}
}

// Borrowed wraps data as an attribute payload borrowed from elsewhere.
func Borrowed(data []byte) AttributePayload {
	return AttributePayload{Data: data, owned: false}
}

// IsOwned reports whether the payload was constructed via Owned rather
// than Borrowed. Go's garbage collector keeps the backing array alive
// either way; this only preserves the source API's ownership distinction.
func (p AttributePayload) IsOwned() bool {
	return p.owned
}

// Bytes returns the payload's raw bytes.
func (p AttributePayload) Bytes() []byte {
	return p.Data
}

// Attribute is one typed numeric array plus the descriptor that identifies
// its geometric association, semantic role, and element layout (spec §3.2).
type Attribute struct {
	Descriptor Descriptor
	Payload    AttributePayload
}

// NewAttribute validates the byte-size/element-size invariant (spec §3.2,
// §6.2: byte_size mod (data_type_size * data_arity) == 0) and constructs
// the attribute.
func NewAttribute(desc Descriptor, payload AttributePayload) (Attribute, error) {
	elemSize := desc.ElementSize()
	if elemSize <= 0 || len(payload.Data)%elemSize != 0 {
		return Attribute{}, newErr(KindBadElementAlignment, desc.String(), "")
	}
	return Attribute{Descriptor: desc, Payload: payload}, nil
}

// ByteSize is the total size of the attribute's payload, in bytes.
func (a Attribute) ByteSize() int {
	return len(a.Payload.Data)
}

// ElementSize is the byte size of one element: DataType.Size() * DataArity.
func (a Attribute) ElementSize() int {
	return a.Descriptor.ElementSize()
}

// NumElements is the number of elements stored in the payload.
func (a Attribute) NumElements() int {
	elemSize := a.ElementSize()
	if elemSize == 0 {
		return 0
	}
	return a.ByteSize() / elemSize
}

// attributeFromBuffer parses a BFAST buffer's name as a descriptor and
// wraps its data as a borrowed attribute payload (spec §4.2's read path).
func attributeFromBuffer(name string, data []byte) (Attribute, error) {
	desc, err := ParseDescriptor(name)
	if err != nil {
		return Attribute{}, err
	}
	if err := utils.ValidateBufferSize(uint64(len(data))+1, utils.MaxAttributeSize, "g3d attribute payload"); err != nil {
		return Attribute{}, wrapErr(KindPayloadTooLarge, name, "", err)
	}
	return NewAttribute(desc, Borrowed(data))
}
