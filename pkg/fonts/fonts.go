// Package fonts enumerates the fonts installed on the host system.
//
// Enumeration prefers a cross-platform font directory source and falls
// back to a platform-native probe when that source cannot answer at all.
// It always produces a list, never an error: anything that goes wrong
// along the way only shortens the result.
package fonts

// Font describes one installed font family.
type Font struct {
	// Name is the human-readable family name. Multiple styles and
	// weights of a family collapse to a single entry.
	Name string `json:"name"`

	// Path is the absolute path to the font file. It is empty when the
	// font is resident in memory or its file could not be resolved.
	Path string `json:"path"`
}
