package buffer

// ChangeKind identifies the operation behind a change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeDelete
	ChangeSet
	ChangeUndo
	ChangeRedo
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeSet:
		return "set"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Change describes the most recent effective text mutation.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	TextBefore    string
	TextAfter     string
	CursorBefore  int
	CursorAfter   int
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	textBefore    string
	cursorBefore  int
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: b.version,
		textBefore:    b.text,
		cursorBefore:  b.cursor,
	}
}

// commitChange records cb and fires OnChange once. Undo and redo always
// notify; other edits notify only when the text changed.
func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		TextBefore:    cb.textBefore,
		TextAfter:     b.text,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
	}
	b.hasLastChange = true

	notify := cb.textBefore != b.text || cb.kind == ChangeUndo || cb.kind == ChangeRedo
	if notify && b.opt.OnChange != nil {
		b.opt.OnChange(b.text)
	}
}
