package types

import (
	"bufio"
	"encoding/binary"
	"io"
	"sort"
)

// TypeMap is a {program point -> Type} map, the per-function record of
// which optimistic type was in effect at each deoptimizable expression the
// last time it was compiled. Program
// points are represented as plain int32 here to avoid a dependency on the
// optimistic package; internal/optimistic's ProgramPoint is a defined type
// over the same int32 representation and converts freely.
type TypeMap map[int32]*Type

// tag is the one-byte-per-entry wire encoding: "L"=object, "D"=number,
// "J"=long; any other symbol is skipped on read (forward-compat). Unknown
// types are never serialized.
func tagFor(t *Type) (byte, bool) {
	switch t {
	case OBJECT:
		return 'L', true
	case NUMBER:
		return 'D', true
	case LONG:
		return 'J', true
	default:
		return 0, false
	}
}

func typeForTag(tag byte) (*Type, bool) {
	switch tag {
	case 'L':
		return OBJECT, true
	case 'D':
		return NUMBER, true
	case 'J':
		return LONG, true
	default:
		return nil, false
	}
}

// WriteTypeMap serializes m in ascending program-point order: a 4-byte
// count, then for each entry a 4-byte program point and a 1-byte tag.
// Entries whose type has no tag (anything but OBJECT/NUMBER/LONG,
// including UNKNOWN) are silently dropped, matching "Unknown types are
// never serialized."
func WriteTypeMap(w io.Writer, m TypeMap) error {
	bw := bufio.NewWriter(w)

	pps := make([]int32, 0, len(m))
	tags := make(map[int32]byte, len(m))
	for pp, t := range m {
		if tag, ok := tagFor(t); ok {
			pps = append(pps, pp)
			tags[pp] = tag
		}
	}
	sort.Slice(pps, func(i, j int) bool { return pps[i] < pps[j] })

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(pps)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}
	for _, pp := range pps {
		var entry [5]byte
		binary.BigEndian.PutUint32(entry[:4], uint32(pp))
		entry[4] = tags[pp]
		if _, err := bw.Write(entry[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTypeMap deserializes a map written by WriteTypeMap. Any trailing tag
// byte it does not recognize is skipped rather than treated as an error,
// so older readers stay forward-compatible with newer tag sets.
func ReadTypeMap(r io.Reader) (TypeMap, error) {
	br := bufio.NewReader(r)

	var hdr [4]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, err
	}
	count := binary.BigEndian.Uint32(hdr[:])

	m := make(TypeMap, count)
	for i := uint32(0); i < count; i++ {
		var entry [5]byte
		if _, err := io.ReadFull(br, entry[:]); err != nil {
			return nil, err
		}
		pp := int32(binary.BigEndian.Uint32(entry[:4]))
		if t, ok := typeForTag(entry[4]); ok {
			m[pp] = t
		}
	}
	return m, nil
}
