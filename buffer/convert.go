package buffer

// PosFromByteOffset maps a byte offset into the document text to a position.
// Offsets are clamped into the document. An offset inside a multi-byte
// grapheme cluster maps to the start of that cluster.
func (b *Buffer) PosFromByteOffset(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	cur := 0
	for row, line := range b.lines {
		for col, cluster := range line {
			next := cur + len(cluster)
			if off < next {
				return Pos{Row: row, GraphemeCol: col}
			}
			cur = next
		}
		if off == cur || row == len(b.lines)-1 {
			return Pos{Row: row, GraphemeCol: len(line)}
		}
		cur++ // newline
	}
	return Pos{}
}

// ByteOffsetFromPos is the inverse of PosFromByteOffset for positions on
// cluster boundaries. p is clamped into the document first.
func (b *Buffer) ByteOffsetFromPos(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += len(cluster)
		}
		off++
	}
	for _, cluster := range b.lines[p.Row][:p.GraphemeCol] {
		off += len(cluster)
	}
	return off
}
