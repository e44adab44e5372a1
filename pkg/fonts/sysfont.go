package fonts

import (
	"fmt"

	"github.com/adrg/sysfont"
)

// SystemSource provides access to fonts found in the standard font
// directories of the host system.
type SystemSource struct {
	finder *sysfont.Finder
}

func NewSystemSource() *SystemSource {
	return &SystemSource{
		finder: sysfont.NewFinder(nil),
	}
}

func (s *SystemSource) Families() ([]string, error) {
	installed := s.finder.List()
	if len(installed) == 0 {
		// A working backend always exposes at least one family.
		return nil, fmt.Errorf("listing font families: %w", ErrSourceUnavailable)
	}

	seen := make(map[string]bool, len(installed))
	var families []string
	for _, font := range installed {
		family := font.Family
		if family == "" {
			family = font.Name
		}
		if family == "" || seen[family] {
			continue
		}
		seen[family] = true
		families = append(families, family)
	}

	return families, nil
}

func (s *SystemSource) BestMatch(family string) (Handle, error) {
	match := s.finder.Match(family)
	if match == nil || match.Filename == "" {
		return nil, fmt.Errorf("no usable match for family %q", family)
	}
	return PathHandle{Path: match.Filename}, nil
}
