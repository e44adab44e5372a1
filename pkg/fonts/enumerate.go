package fonts

import (
	"log/slog"

	"github.com/matu6968/open-get-fonts/internal/probe"
)

// Enumerator collects the fonts installed on the host. It asks the
// cross-platform Source first and falls back to the platform-native
// prober when the source cannot enumerate anything at all.
type Enumerator struct {
	source Source
	prober probe.Prober
	logger *slog.Logger
}

// New creates an Enumerator wired to the system font source and the
// probe compiled for the current platform.
func New() *Enumerator {
	return NewEnumerator(nil, nil, nil)
}

// NewEnumerator creates an Enumerator from explicit collaborators.
// Nil arguments are replaced with the platform defaults.
func NewEnumerator(source Source, prober probe.Prober, logger *slog.Logger) *Enumerator {
	if source == nil {
		source = NewSystemSource()
	}
	if prober == nil {
		prober = probe.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Enumerator{
		source: source,
		prober: prober,
		logger: logger,
	}
}

// List returns every font the Enumerator could discover. It never
// fails: a family that cannot be resolved is skipped, and a source that
// cannot enumerate at all is replaced by the platform probe. The result
// may be empty.
func (e *Enumerator) List() []Font {
	fonts := []Font{}

	families, err := e.source.Families()
	if err == nil && len(families) > 0 {
		for _, family := range families {
			handle, err := e.source.BestMatch(family)
			if err != nil {
				e.logger.Debug("skipping unresolvable font family",
					"family", family, "error", err)
				continue
			}
			fonts = append(fonts, fontFromHandle(family, handle))
		}
		return fonts
	}

	if err != nil {
		e.logger.Debug("system font source failed, trying platform probe", "error", err)
	} else {
		e.logger.Debug("system font source listed no families, trying platform probe")
	}

	records, ok := e.prober.Fonts()
	if !ok {
		e.logger.Debug("platform font probe unavailable")
		return fonts
	}
	for _, record := range records {
		fonts = append(fonts, Font{Name: record.Family, Path: record.Path})
	}
	return fonts
}

func fontFromHandle(family string, handle Handle) Font {
	switch h := handle.(type) {
	case PathHandle:
		return Font{Name: family, Path: h.Path}
	case MemoryHandle:
		// Memory fonts have no file; the empty path carries that.
		return Font{Name: family}
	default:
		return Font{Name: family}
	}
}

// List enumerates installed fonts with the default collaborators.
func List() []Font {
	return New().List()
}
