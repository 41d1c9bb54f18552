package contour

import "errors"

var (
	// ErrEmptySequence indicates a contour with no intervals (a melody needs
	// at least two notes).
	ErrEmptySequence = errors.New("contour: sequences must be non-empty")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("contour: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBadWindow indicates a negative window.
	ErrBadWindow = errors.New("contour: window must be >= 0")
)

// MemoryMode controls how the DP matrix is stored.
//
//   - FullMatrix   keeps the entire (n+1)x(m+1) matrix; supports path recovery.
//   - RollingArray keeps two rows; distance only.
type MemoryMode int

const (
	// FullMatrix stores all rows, supports path recovery, O(N·M) memory.
	FullMatrix MemoryMode = iota

	// RollingArray keeps only two rows, no path recovery, O(M) memory.
	RollingArray
)

// Options configures a DTW comparison.
//
// Fields:
//   - Window       maximum deviation |i-j| (Sakoe-Chiba band); 0 disables it.
//   - SlopePenalty cost added to insertion/deletion steps.
//   - ReturnPath   backtrack and return the optimal warping path.
//   - MemoryMode   FullMatrix or RollingArray.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

// Coord is one cell of a warping path: contour index I of a aligned with
// contour index J of b.
type Coord struct {
	I, J int
}

// Result of Compare.
type Result struct {
	// Distance is the cumulative DTW cost; +Inf when the window makes the
	// contours unalignable.
	Distance float64
	// Normalized is Distance divided by the longer contour length.
	Normalized float64
	// Path is the warping path, when requested.
	Path []Coord
}
