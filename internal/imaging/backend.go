package imaging

import (
	"fmt"
	"sort"
	"strings"
)

// Default backend names.
const (
	DefaultSmoother = "gaussian"
	DefaultResizer  = "imaging"
)

var smoothers = map[string]Smoother{
	"gaussian": GaussianSmoother{},
	"sigma":    SigmaSmoother{},
}

var resizers = map[string]Resizer{
	"imaging": LinearResizer{},
	"bild":    BildResizer{},
	"xdraw":   DrawResizer{},
	"nfnt":    NfntResizer{},
}

// SmootherByName returns the registered smoothing backend called name.
// An empty name selects DefaultSmoother.
func SmootherByName(name string) (Smoother, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultSmoother
	}
	s, ok := smoothers[name]
	if !ok {
		return nil, fmt.Errorf("unknown smooth backend %q (must be one of %s)", name, strings.Join(SmootherNames(), ", "))
	}
	return s, nil
}

// ResizerByName returns the registered resizing backend called name.
// An empty name selects DefaultResizer.
func ResizerByName(name string) (Resizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultResizer
	}
	r, ok := resizers[name]
	if !ok {
		return nil, fmt.Errorf("unknown resize backend %q (must be one of %s)", name, strings.Join(ResizerNames(), ", "))
	}
	return r, nil
}

// SmootherNames lists the registered smoothing backends in sorted order.
func SmootherNames() []string {
	return sortedKeys(smoothers)
}

// ResizerNames lists the registered resizing backends in sorted order.
func ResizerNames() []string {
	return sortedKeys(resizers)
}

func sortedKeys[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
