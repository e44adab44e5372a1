package fonts_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/matu6968/open-get-fonts/internal/probe"
	"github.com/matu6968/open-get-fonts/pkg/fonts"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Mock source for testing
type mockSource struct {
	families    []string
	familiesErr error
	handles     map[string]fonts.Handle
	failures    map[string]error
}

func (m *mockSource) Families() ([]string, error) {
	return m.families, m.familiesErr
}

func (m *mockSource) BestMatch(family string) (fonts.Handle, error) {
	if err, ok := m.failures[family]; ok {
		return nil, err
	}
	handle, ok := m.handles[family]
	if !ok {
		return nil, fmt.Errorf("font not found: %s", family)
	}
	return handle, nil
}

// Mock platform prober for testing
type mockProber struct {
	records []probe.Record
	ok      bool
	calls   int
}

func (m *mockProber) Fonts() ([]probe.Record, bool) {
	m.calls++
	return m.records, m.ok
}

var _ = Describe("Enumerator", func() {
	var (
		source *mockSource
		prober *mockProber
		logger *slog.Logger
	)

	newEnumerator := func() *fonts.Enumerator {
		return fonts.NewEnumerator(source, prober, logger)
	}

	BeforeEach(func() {
		source = &mockSource{
			families: []string{"DejaVu Sans", "Liberation Serif"},
			handles: map[string]fonts.Handle{
				"DejaVu Sans":      fonts.PathHandle{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
				"Liberation Serif": fonts.PathHandle{Path: "/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf"},
			},
			failures: map[string]error{},
		}
		prober = &mockProber{
			records: []probe.Record{
				{Family: "Fallback Sans", Path: "/fallback/FallbackSans.ttf"},
			},
			ok: true,
		}
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	Describe("with a working source", func() {
		It("returns one record per family with its resolved path", func() {
			list := newEnumerator().List()
			Expect(list).To(Equal([]fonts.Font{
				{Name: "DejaVu Sans", Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
				{Name: "Liberation Serif", Path: "/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf"},
			}))
		})

		It("does not consult the platform prober", func() {
			newEnumerator().List()
			Expect(prober.calls).To(BeZero())
		})

		It("reports memory-resident fonts with an empty path", func() {
			source.families = append(source.families, "Embedded Mono")
			source.handles["Embedded Mono"] = fonts.MemoryHandle{Data: []byte("sfnt")}

			list := newEnumerator().List()
			Expect(list).To(ContainElement(fonts.Font{Name: "Embedded Mono", Path: ""}))
		})

		It("skips a family that fails to resolve and keeps the rest", func() {
			source.families = []string{"Broken", "DejaVu Sans", "Liberation Serif"}
			source.failures["Broken"] = fmt.Errorf("simulated failure")

			list := newEnumerator().List()
			Expect(list).To(HaveLen(2))
			for _, font := range list {
				Expect(font.Name).NotTo(Equal("Broken"))
			}
		})

		It("never returns a record with an empty name", func() {
			list := newEnumerator().List()
			for _, font := range list {
				Expect(font.Name).NotTo(BeEmpty())
			}
		})

		It("produces the same family set on consecutive calls", func() {
			first := newEnumerator().List()
			second := newEnumerator().List()

			names := func(list []fonts.Font) []string {
				var out []string
				for _, font := range list {
					out = append(out, font.Name)
				}
				return out
			}
			Expect(names(second)).To(ConsistOf(names(first)))
		})
	})

	Describe("when the source cannot enumerate families", func() {
		BeforeEach(func() {
			source.familiesErr = fmt.Errorf("families: %w", fonts.ErrSourceUnavailable)
			source.families = nil
		})

		It("returns exactly the prober output", func() {
			list := newEnumerator().List()
			Expect(list).To(Equal([]fonts.Font{
				{Name: "Fallback Sans", Path: "/fallback/FallbackSans.ttf"},
			}))
			Expect(prober.calls).To(Equal(1))
		})

		It("returns an empty list when the prober is unavailable too", func() {
			prober.ok = false
			prober.records = nil

			list := newEnumerator().List()
			Expect(list).NotTo(BeNil())
			Expect(list).To(BeEmpty())
		})
	})

	Describe("when the source reports zero families", func() {
		BeforeEach(func() {
			source.families = nil
			source.familiesErr = nil
		})

		It("falls back to the prober with no source contribution", func() {
			list := newEnumerator().List()
			Expect(list).To(Equal([]fonts.Font{
				{Name: "Fallback Sans", Path: "/fallback/FallbackSans.ttf"},
			}))
		})
	})

	Describe("fallback logging", func() {
		var logBuf *bytes.Buffer

		BeforeEach(func() {
			logBuf = &bytes.Buffer{}
			logger = slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		})

		It("records the source error when enumeration fails", func() {
			source.families = nil
			source.familiesErr = fmt.Errorf("backend exploded")

			newEnumerator().List()
			Expect(logBuf.String()).To(ContainSubstring("backend exploded"))
		})

		It("distinguishes an empty family list from a source error", func() {
			source.families = nil
			source.familiesErr = nil

			newEnumerator().List()
			Expect(logBuf.String()).To(ContainSubstring("listed no families"))
			Expect(logBuf.String()).NotTo(ContainSubstring("error="))
		})
	})

	Describe("ListAsync", func() {
		It("delivers the same records List produces", func() {
			ctx := context.Background()
			var list []fonts.Font
			Eventually(newEnumerator().ListAsync(ctx)).Should(Receive(&list))
			Expect(list).To(Equal(newEnumerator().List()))
		})

		It("closes without a send when the context is cancelled first", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			out := newEnumerator().ListAsync(ctx)
			Eventually(out).Should(BeClosed())
		})
	})
})
