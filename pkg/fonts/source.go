package fonts

import "errors"

// ErrSourceUnavailable indicates that a Source has no working font
// backend at all, as opposed to failing on one particular family.
var ErrSourceUnavailable = errors.New("font source unavailable")

// Handle is a resolved reference to one font resource. It is either a
// PathHandle or a MemoryHandle.
type Handle interface {
	isHandle()
}

// PathHandle points at a font file on disk.
type PathHandle struct {
	Path string
}

// MemoryHandle holds a font that exists only in memory and has no
// backing file.
type MemoryHandle struct {
	Data []byte
}

func (PathHandle) isHandle()   {}
func (MemoryHandle) isHandle() {}

// Source defines how to discover fonts through a cross-platform backend.
type Source interface {
	// Families lists every font family the backend knows about, in the
	// order the backend reports them.
	Families() ([]string, error)

	// BestMatch resolves the representative font for a family using
	// default style properties.
	BestMatch(family string) (Handle, error)
}
