package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceInput is a user edit: typing, deleting, pasting.
	ChangeSourceInput ChangeSource = iota
	// ChangeSourceProgram is a whole-document replacement by the host
	// (format, minify, clear, restoring a shared link).
	ChangeSourceProgram
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceInput:
		return "input"
	case ChangeSourceProgram:
		return "program"
	default:
		return "unknown"
	}
}

// AppliedEdit describes the effective text replacement of a change.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is the record of one effective text mutation.
type Change struct {
	Source            ChangeSource
	VersionBefore     uint64
	VersionAfter      uint64
	TextVersionBefore uint64
	TextVersionAfter  uint64
	CursorBefore      Pos
	CursorAfter       Pos
	Edit              AppliedEdit
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	return b.lastChange, b.hasLastChange
}

func (b *Buffer) commit(source ChangeSource, before Change, nextCursor Pos, applied AppliedEdit) {
	b.cursor = b.clampPos(nextCursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++

	before.Source = source
	before.VersionAfter = b.version
	before.TextVersionAfter = b.textVersion
	before.CursorAfter = b.cursor
	applied.RangeBefore = NormalizeRange(applied.RangeBefore)
	applied.RangeAfter = NormalizeRange(applied.RangeAfter)
	before.Edit = applied

	b.lastChange = before
	b.hasLastChange = true
}

func (b *Buffer) pending() Change {
	return Change{
		VersionBefore:     b.version,
		TextVersionBefore: b.textVersion,
		CursorBefore:      b.cursor,
	}
}
