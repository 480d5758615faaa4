package hashobj

import "encoding/binary"

// PackedPairList is the default PairList: alternating field, value
// byte strings packed back-to-back into a single contiguous buffer,
// each prefixed by a uvarint length, modeled on the teacher's tight
// bucket/overflow byte layout (§2 "PackedPairList" in SPEC_FULL). No
// host server supplies a collaborator here, so this is what the
// PACKED representation runs on standalone.
type PackedPairList struct {
	buf     []byte
	offsets []uint32
}

// NewPackedPairList returns an empty packed list.
func NewPackedPairList() *PackedPairList {
	return &PackedPairList{}
}

func encodeEntry(data []byte) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(data)))
	out := make([]byte, 0, n+len(data))
	out = append(out, tmp[:n]...)
	out = append(out, data...)
	return out
}

// decodeEntry returns the raw payload at offset off and the number of
// bytes the length-prefixed entry occupies.
func decodeEntry(buf []byte, off uint32) (data []byte, total uint32) {
	length, n := binary.Uvarint(buf[off:])
	start := off + uint32(n)
	end := start + uint32(length)
	return buf[start:end], uint32(n) + uint32(length)
}

// Len reports the number of (field, value) pairs.
func (p *PackedPairList) Len() int {
	return len(p.offsets) / 2
}

func (p *PackedPairList) entryAt(idx int) []byte {
	data, _ := decodeEntry(p.buf, p.offsets[idx])
	return data
}

// FieldAt returns the field byte string of pair i.
func (p *PackedPairList) FieldAt(i int) []byte {
	return p.entryAt(2 * i)
}

// ValueAt returns the value byte string of pair i.
func (p *PackedPairList) ValueAt(i int) []byte {
	return p.entryAt(2*i + 1)
}

// Find does a linear scan for field, as spec'd for the PACKED
// representation (§4.3 "Lookup is linear").
func (p *PackedPairList) Find(field []byte) (int, bool) {
	for i := 0; i < p.Len(); i++ {
		if string(p.FieldAt(i)) == string(field) {
			return i, true
		}
	}
	return 0, false
}

// Append pushes field then value at the tail (§4.3).
func (p *PackedPairList) Append(field, value []byte) {
	p.offsets = append(p.offsets, uint32(len(p.buf)))
	p.buf = append(p.buf, encodeEntry(field)...)
	p.offsets = append(p.offsets, uint32(len(p.buf)))
	p.buf = append(p.buf, encodeEntry(value)...)
}

// splice replaces the entry at raw entry index idx with newData,
// shifting every later entry's recorded offset by the size delta.
func (p *PackedPairList) splice(idx int, newData []byte) {
	oldOff := p.offsets[idx]
	_, oldTotal := decodeEntry(p.buf, oldOff)
	encoded := encodeEntry(newData)
	delta := len(encoded) - int(oldTotal)

	tail := make([]byte, len(p.buf)-int(oldOff)-int(oldTotal))
	copy(tail, p.buf[int(oldOff)+int(oldTotal):])

	p.buf = append(p.buf[:oldOff:oldOff], encoded...)
	p.buf = append(p.buf, tail...)

	for i := idx + 1; i < len(p.offsets); i++ {
		p.offsets[i] = uint32(int(p.offsets[i]) + delta)
	}
}

// ReplaceValueAt deletes the old value node in place and inserts the
// new one (§4.3 "Updates delete the old value node in place...").
func (p *PackedPairList) ReplaceValueAt(i int, value []byte) {
	p.splice(2*i+1, value)
}

// DeleteAt removes both the field and the value node of pair i
// (§4.3 "Delete removes both the field and the value node").
func (p *PackedPairList) DeleteAt(i int) {
	fieldIdx := 2 * i
	fOff := p.offsets[fieldIdx]
	vOff := p.offsets[fieldIdx+1]
	_, vTotal := decodeEntry(p.buf, vOff)
	end := vOff + vTotal
	removed := int(end - fOff)

	tail := make([]byte, len(p.buf)-int(end))
	copy(tail, p.buf[end:])
	p.buf = append(p.buf[:fOff:fOff], tail...)

	remaining := make([]uint32, 0, len(p.offsets)-2)
	remaining = append(remaining, p.offsets[:fieldIdx]...)
	for _, off := range p.offsets[fieldIdx+2:] {
		remaining = append(remaining, uint32(int(off)-removed))
	}
	p.offsets = remaining
}

// ByteSize reports the packed buffer's length, the PACKED analogue of
// IntSet.BlobSize.
func (p *PackedPairList) ByteSize() int {
	return len(p.buf)
}
