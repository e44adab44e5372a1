//go:build !linux && !darwin && !windows

package probe

type unsupportedProber struct{}

// New returns a prober for platforms without a native font service to
// ask; it always reports unavailable.
func New() Prober {
	return unsupportedProber{}
}

func (unsupportedProber) Fonts() ([]Record, bool) {
	return nil, false
}
