package contour

import (
	"math"
)

// Intervals returns the signed melodic intervals between successive notes of
// melody. A melody with fewer than two notes has an empty contour.
//
// Complexity: O(N).
func Intervals(melody []int) []float64 {
	if len(melody) < 2 {
		return []float64{}
	}
	out := make([]float64, len(melody)-1)
	for i := 1; i < len(melody); i++ {
		out[i-1] = float64(melody[i] - melody[i-1])
	}

	return out
}

// Compare computes the DTW distance between the contours of two melodies.
// A nil opts uses DefaultOptions.
//
// Errors: ErrEmptySequence, ErrBadWindow, ErrPathNeedsFullMatrix.
func Compare(a, b []int, opts *Options) (Result, error) {
	ca, cb := Intervals(a), Intervals(b)
	dist, path, err := DTW(ca, cb, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Distance:   dist,
		Normalized: dist / float64(max(len(ca), len(cb))),
		Path:       path,
	}, nil
}

// DTW computes the Dynamic Time Warping distance between sequences a and b.
//
// Algorithm (full matrix):
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +Inf.
//  2. For i = 1..n, j = 1..m with |i-j| ≤ Window (when set):
//     D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+pen, D[i][j-1]+pen, D[i-1][j-1]).
//  3. distance = D[n][m].
//  4. With ReturnPath, walk back from (n,m) to (1,1) preferring the diagonal,
//     then insertion, then deletion, whichever produced D[i][j].
//
// Complexity: O(n·m) time; O(n·m) or O(m) memory.
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}

	// 1. Resolve options.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < 0 {
		return 0, nil, ErrBadWindow
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsFullMatrix
	}

	// 2. Storage: n+1 rows, or two rolling rows.
	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	// 3. Fill.
	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}
	for i := 1; i <= n; i++ {
		prev, curr := row(i-1), row(i)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window > 0 && abs(i-j) > o.Window {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) +
				min(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
	}
	distance = row(n)[m]

	// 4. Backtrack.
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, a, b, o.SlopePenalty)
	}

	return distance, path, nil
}

// backtrack recovers the warping path from a full DP matrix.
func backtrack(dp [][]float64, a, b []float64, penalty float64) []Coord {
	var (
		i, j = len(a), len(b)
		path = make([]Coord, 0, i+j)
	)
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		rest := dp[i][j] - math.Abs(a[i-1]-b[j-1])
		switch {
		case approxEqual(dp[i-1][j-1], rest):
			i, j = i-1, j-1
		case approxEqual(dp[i-1][j]+penalty, rest):
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// approxEqual reports float equality within a small tolerance; Inf never matches.
func approxEqual(x, y float64) bool {
	return !math.IsInf(x, 0) && math.Abs(x-y) <= 1e-9
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
