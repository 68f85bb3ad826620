//go:build !linux

package workers

type unsupportedPinner struct{}

// DefaultPinner returns a pinner that always fails with ErrPinUnsupported.
func DefaultPinner() Pinner {
	return unsupportedPinner{}
}

func (unsupportedPinner) CPUs() ([]int, error) {
	return nil, ErrPinUnsupported
}

func (unsupportedPinner) Pin(int) error {
	return ErrPinUnsupported
}
