package area

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrUnknownMethod indicates a method name other than "pick" or "scanline".
var ErrUnknownMethod = errors.New("area: unknown method")

// Method selects the interior-counting strategy.
type Method int

const (
	// MethodPick uses the shoelace formula and Pick's theorem.
	MethodPick Method = iota
	// MethodScanline uses a row-wise parity sweep.
	MethodScanline
)

// ParseMethod maps "pick" or "scanline" (any case) to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pick", "":
		return MethodPick, nil
	case "scanline":
		return MethodScanline, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

func (m Method) String() string {
	switch m {
	case MethodPick:
		return "pick"
	case MethodScanline:
		return "scanline"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Shoelace returns twice the polygon area enclosed by the closed path p:
// |Σ (y_i + y_{i+1}) · (x_i − x_{i+1})| over consecutive vertices.
// The sum is accumulated in int64 since partial sums are signed.
// Complexity: O(L).
func Shoelace(p pipegrid.Path) int64 {
	var sum int64
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		sum += int64(a.Y+b.Y) * int64(a.X-b.X)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

// Enclosed returns the number of lattice cells strictly inside the closed
// path p using Pick's theorem, with Boundary = len(p) − 1 distinct points.
// Paths with fewer than two vertices enclose nothing. The result is never
// negative.
// Complexity: O(L).
func Enclosed(p pipegrid.Path) int {
	if len(p) < 2 {
		return 0
	}
	// For unit axis steps the shoelace sum is always even.
	doubled := Shoelace(p)
	boundary := int64(p.Len())
	interior := doubled/2 - boundary/2 + 1
	if interior < 0 {
		return 0
	}
	return int(interior)
}
