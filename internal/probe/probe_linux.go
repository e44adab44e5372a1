//go:build linux

package probe

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Well-known distribution fonts, checked when fontconfig answers with
// an empty result set.
var wellKnownFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/Arial.ttf",
}

type linuxProber struct {
	lookPath func(file string) (string, error)
	run      func(name string, args ...string) ([]byte, error)
	stat     func(name string) (os.FileInfo, error)
}

// New returns a prober backed by the fontconfig service.
func New() Prober {
	return &linuxProber{
		lookPath: exec.LookPath,
		run:      runCommand,
		stat:     os.Stat,
	}
}

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (p *linuxProber) Fonts() ([]Record, bool) {
	if _, err := p.lookPath("fc-list"); err != nil {
		return nil, false
	}

	// Match-all query asking fontconfig for the family name and file of
	// every installed font, one tab-separated pair per line.
	out, err := p.run("fc-list", "--format", "%{family[0]}\t%{file}\n")
	if err != nil {
		return nil, false
	}

	records := parseFontList(out)
	if len(records) == 0 {
		records = p.wellKnown()
	}
	return records, true
}

func parseFontList(out []byte) []Record {
	records := []Record{}
	for _, line := range strings.Split(string(out), "\n") {
		family, file, ok := strings.Cut(line, "\t")
		if !ok || family == "" || file == "" {
			continue
		}
		records = append(records, Record{Family: family, Path: file})
	}
	return records
}

// wellKnown reports whichever well-known fonts exist on disk, naming
// each after its file base name.
func (p *linuxProber) wellKnown() []Record {
	records := []Record{}
	for _, path := range wellKnownFonts {
		if _, err := p.stat(path); err != nil {
			continue
		}
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		records = append(records, Record{Family: name, Path: path})
	}
	return records
}
