package vim

import (
	"strconv"
	"strings"
)

// vimTag is the 4-byte little-endian tag "VIM1" (0x314D4956) marking the
// tagged header form (spec §3.3, §6.3).
var vimTag = [4]byte{'V', 'I', 'M', '1'}

// Header holds the parsed key/value header plus the version triple
// extracted from its "vim" (and, for the legacy form, "objectmodel") key.
type Header struct {
	Fields  map[string]string
	Major   uint32
	Minor   uint32
	Patch   uint32
	HasVersion bool
}

const unknownVersion = 0xffffffff

func newHeader() Header {
	return Header{
		Fields: map[string]string{},
		Major:  unknownVersion,
		Minor:  unknownVersion,
		Patch:  unknownVersion,
	}
}

// parseHeader parses the "header" section's raw bytes, detecting the
// tagged vs. legacy form by the literal four-byte prefix (spec §4.3,
// §6.3). It never returns an error: a missing "vim" key is reported via
// Header.HasVersion, matching the source's non-throwing NoVersionInfo path.
func parseHeader(data []byte) Header {
	h := newHeader()

	if len(data) >= 4 && data[0] == vimTag[0] && data[1] == vimTag[1] && data[2] == vimTag[2] && data[3] == vimTag[3] {
		parseTaggedHeader(data[4:], &h)
	} else {
		parseLegacyHeader(data, &h)
	}
	return h
}

func parseTaggedHeader(data []byte, h *Header) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		h.Fields[k] = v
	}

	vimVal, ok := h.Fields["vim"]
	if !ok {
		return
	}
	parts := strings.Split(vimVal, ".")
	h.HasVersion = true
	if len(parts) > 0 {
		h.Major = atou32(parts[0])
	}
	if len(parts) > 1 {
		h.Minor = atou32(parts[1])
	}
	if len(parts) > 2 {
		h.Patch = atou32(parts[2])
	}
}

// parseLegacyHeader parses the colon-delimited alternating key:value form
// and synthesizes the version triple per spec §3.3/§8.2 scenario 6: major
// is always 0, minor is the first dotted part of "vim", and patch is the
// decimal concatenation of "objectmodel"'s dotted parts, zero-padded to
// three parts.
func parseLegacyHeader(data []byte, h *Header) {
	tokens := strings.Split(string(data), ":")
	for i := 0; i+1 < len(tokens); i += 2 {
		h.Fields[tokens[i]] = tokens[i+1]
	}

	vimVal, ok := h.Fields["vim"]
	if !ok {
		return
	}
	h.HasVersion = true
	h.Major = 0

	vimParts := strings.Split(vimVal, ".")
	if len(vimParts) > 0 {
		h.Minor = atou32(vimParts[0])
	}

	objParts := strings.Split(h.Fields["objectmodel"], ".")
	for len(objParts) < 3 {
		objParts = append(objParts, "0")
	}
	h.Patch = atou32(strings.Join(objParts[:3], ""))
}

func atou32(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return unknownVersion
	}
	return uint32(n)
}
