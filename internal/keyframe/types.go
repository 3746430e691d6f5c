// Package keyframe provides the data structures and parser for animkit
// clip library files. A clip library maps numeric clip identifiers to
// named keyframe tracks: ordered, timestamped pose samples that the
// playback engine advances over at runtime.
package keyframe

import (
	"fmt"
	"sort"
)

// Pose is a single 2D transform sample. The playback core treats poses as
// opaque payload; only rendering specializations interpret the fields.
type Pose struct {
	// X and Y are position offsets in pixels
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// ScaleX and ScaleY are scale factors (1.0 = normal size)
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`

	// Rotation is the rotation angle in degrees
	Rotation float64 `yaml:"rotation"`

	// Alpha is the opacity, 0.0 (transparent) to 1.0 (opaque)
	Alpha float64 `yaml:"alpha"`
}

// Keyframe is one timestamped pose sample within a track.
type Keyframe struct {
	// Time is the sample timestamp in seconds from the start of the track
	Time float64 `yaml:"time"`

	// Pose is the transform sample applied when this keyframe is crossed
	Pose Pose `yaml:"pose"`
}

// Track is an ordered sequence of keyframes belonging to one clip.
// Invariant: timestamps are non-decreasing and the track is never empty.
type Track struct {
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Len returns the number of keyframes in the track.
func (t *Track) Len() int {
	return len(t.Keyframes)
}

// LastIndex returns the index of the final keyframe, or -1 for an empty track.
func (t *Track) LastIndex() int {
	return len(t.Keyframes) - 1
}

// At returns the keyframe at index i. The caller is responsible for bounds;
// playback code always clamps indices before calling.
func (t *Track) At(i int) Keyframe {
	return t.Keyframes[i]
}

// Validate checks the track invariants: at least one keyframe, and
// timestamps sorted in non-decreasing order.
func (t *Track) Validate() error {
	if len(t.Keyframes) == 0 {
		return fmt.Errorf("track has no keyframes")
	}
	if !sort.SliceIsSorted(t.Keyframes, func(i, j int) bool {
		return t.Keyframes[i].Time < t.Keyframes[j].Time
	}) {
		return fmt.Errorf("track keyframes are not sorted by timestamp")
	}
	return nil
}

// LerpPose linearly interpolates between two poses.
// t is clamped to [0, 1] so callers can pass raw time ratios.
func LerpPose(a, b Pose, t float64) Pose {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Pose{
		X:        a.X + (b.X-a.X)*t,
		Y:        a.Y + (b.Y-a.Y)*t,
		ScaleX:   a.ScaleX + (b.ScaleX-a.ScaleX)*t,
		ScaleY:   a.ScaleY + (b.ScaleY-a.ScaleY)*t,
		Rotation: a.Rotation + (b.Rotation-a.Rotation)*t,
		Alpha:    a.Alpha + (b.Alpha-a.Alpha)*t,
	}
}
