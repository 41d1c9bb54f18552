// Package contour compares the melodic shape of two voices with Dynamic Time
// Warping (DTW) over their interval contours.
//
// A contour is the sequence of signed melodic intervals between successive
// notes, so transposed copies of a melody share one contour and a voice that
// lingers on a note only stretches the time axis. DTW then finds the cheapest
// alignment of two contours, allowing one to run faster than the other.
//
// Key features:
//   - full-matrix mode with optional warping path recovery
//   - rolling mode with O(min(N,M)) memory when only the distance matters
//   - optional Sakoe-Chiba window (|i-j| ≤ w)
//   - slope penalty to discourage excessive stretching
//
// Usage:
//
//	opts := contour.DefaultOptions()
//	opts.ReturnPath = true
//	res, err := contour.Compare(cantus, counterpoint, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (RollingArray)
package contour
