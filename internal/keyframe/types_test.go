package keyframe

import (
	"math"
	"testing"
)

func TestValidateEmptyTrack(t *testing.T) {
	track := &Track{}
	if err := track.Validate(); err == nil {
		t.Error("empty track should be invalid")
	}
}

func TestValidateUnsortedTrack(t *testing.T) {
	track := &Track{Keyframes: []Keyframe{
		{Time: 0.5},
		{Time: 0.0},
	}}
	if err := track.Validate(); err == nil {
		t.Error("unsorted track should be invalid")
	}
}

func TestValidateAllowsEqualTimestamps(t *testing.T) {
	// 时间戳单调不减：相等时间戳合法（同一时刻的多个样本）
	track := &Track{Keyframes: []Keyframe{
		{Time: 0.0},
		{Time: 0.5},
		{Time: 0.5},
		{Time: 1.0},
	}}
	if err := track.Validate(); err != nil {
		t.Errorf("non-decreasing timestamps should be valid: %v", err)
	}
}

func TestTrackAccessors(t *testing.T) {
	track := &Track{Keyframes: []Keyframe{
		{Time: 0.0},
		{Time: 1.0},
	}}

	if track.Len() != 2 {
		t.Errorf("Len = %d, want 2", track.Len())
	}
	if track.LastIndex() != 1 {
		t.Errorf("LastIndex = %d, want 1", track.LastIndex())
	}
	if track.At(1).Time != 1.0 {
		t.Errorf("At(1).Time = %f, want 1.0", track.At(1).Time)
	}

	empty := &Track{}
	if empty.LastIndex() != -1 {
		t.Errorf("empty track LastIndex = %d, want -1", empty.LastIndex())
	}
}

func TestLerpPose(t *testing.T) {
	a := Pose{X: 0, Y: 10, ScaleX: 1, ScaleY: 1, Rotation: 0, Alpha: 1}
	b := Pose{X: 10, Y: 20, ScaleX: 2, ScaleY: 1, Rotation: 90, Alpha: 0}

	mid := LerpPose(a, b, 0.5)
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y-15) > 1e-9 {
		t.Errorf("midpoint position = (%f, %f), want (5, 15)", mid.X, mid.Y)
	}
	if math.Abs(mid.ScaleX-1.5) > 1e-9 {
		t.Errorf("midpoint ScaleX = %f, want 1.5", mid.ScaleX)
	}
	if math.Abs(mid.Rotation-45) > 1e-9 {
		t.Errorf("midpoint Rotation = %f, want 45", mid.Rotation)
	}
	if math.Abs(mid.Alpha-0.5) > 1e-9 {
		t.Errorf("midpoint Alpha = %f, want 0.5", mid.Alpha)
	}

	// t 超出 [0,1] 时夹取
	if got := LerpPose(a, b, -1).X; got != a.X {
		t.Errorf("t below 0 should clamp to a, got X = %f", got)
	}
	if got := LerpPose(a, b, 2).X; got != b.X {
		t.Errorf("t above 1 should clamp to b, got X = %f", got)
	}
}
