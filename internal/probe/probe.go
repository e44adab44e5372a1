// Package probe discovers fonts through platform-native font services.
// It is the fallback used when the cross-platform source cannot
// enumerate anything; exactly one prober is compiled per target OS.
package probe

// Record is one font family reported by a platform probe.
type Record struct {
	Family string
	Path   string
}

// Prober handles platform-specific font discovery.
type Prober interface {
	// Fonts enumerates fonts through the native font service. ok is
	// false when the service itself is unavailable; an empty slice with
	// ok true means the service answered and found nothing.
	Fonts() (records []Record, ok bool)
}
