package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/animkit/internal/keyframe"
	"github.com/decker502/animkit/pkg/anim"
	"github.com/decker502/animkit/pkg/components"
	"github.com/decker502/animkit/pkg/ecs"
)

// walkTrack 时间戳 [0.0, 0.5, 1.0] 的测试轨道
func walkTrack() *keyframe.Track {
	return &keyframe.Track{Keyframes: []keyframe.Keyframe{
		{Time: 0.0, Pose: keyframe.Pose{X: 0, ScaleX: 1, ScaleY: 1, Alpha: 1}},
		{Time: 0.5, Pose: keyframe.Pose{X: 10, ScaleX: 1, ScaleY: 1, Alpha: 1}},
		{Time: 1.0, Pose: keyframe.Pose{X: 20, ScaleX: 1, ScaleY: 1, Alpha: 1}},
	}}
}

func newAnimEntity(em *ecs.EntityManager, autoPlay bool) (*components.AnimationComponent, ecs.EntityID) {
	registry := anim.NewRegistry(nil)
	registry.AddClip(anim.NewClip("walk", walkTrack()), "walk")
	registry.AddClip(anim.NewClip("idle", walkTrack()), "idle")
	registry.SetDefaultClip("walk")

	comp := &components.AnimationComponent{
		Registry: registry,
		AutoPlay: autoPlay,
	}
	id := em.CreateEntity()
	em.AddComponent(id, comp)
	return comp, id
}

// TestOnReadyAutoPlay 装载完成后的第一个 tick 自动播放默认剪辑，
// 且只执行一次
func TestOnReadyAutoPlay(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	comp, _ := newAnimEntity(em, true)

	// 未装载完成：不触发自动播放
	if err := system.Update(1.0 / 60.0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if comp.Registry.IsPlayingAny() {
		t.Error("auto-play must not fire before loading completes")
	}

	comp.Loaded = true
	if err := system.Update(1.0 / 60.0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !comp.Registry.IsPlaying("walk") {
		t.Error("auto-play should enable the default clip")
	}
	if !comp.ReadyFired {
		t.Error("ReadyFired should be set after the on-ready tick")
	}

	// on-ready 只执行一次：手动停止后不会被重新拉起
	comp.Registry.StopAll()
	if err := system.Update(1.0 / 60.0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if comp.Registry.IsPlayingAny() {
		t.Error("on-ready hook must fire exactly once")
	}
}

func TestOnReadyWithoutAutoPlay(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	comp, _ := newAnimEntity(em, false)
	comp.Loaded = true

	if err := system.Update(1.0 / 60.0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if comp.Registry.IsPlayingAny() {
		t.Error("nothing should play when auto-play is disabled")
	}
	if !comp.ReadyFired {
		t.Error("on-ready hook still runs (and is consumed) without auto-play")
	}
}

// TestUpdateForwardsDelta 系统把 delta 转发给每个实体的注册表
func TestUpdateForwardsDelta(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	comp, _ := newAnimEntity(em, false)
	comp.Registry.Play("walk")

	for i := 0; i < 6; i++ {
		if err := system.Update(0.1); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	got := comp.Registry.State("walk").Time
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("walk state should have advanced to 0.6, got %f", got)
	}
	if comp.Registry.State("idle").Time != 0 {
		t.Error("disabled idle state must not advance")
	}
}

// TestUpdatePropagatesHardErrors 未指定包裹模式的硬错误向上传播
func TestUpdatePropagatesHardErrors(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	registry := anim.NewRegistry(nil)
	registry.SetDefaultWrapMode(anim.WrapDefault)
	registry.AddClip(anim.NewClip("broken", walkTrack()), "broken")
	registry.Play("broken")

	id := em.CreateEntity()
	em.AddComponent(id, &components.AnimationComponent{Registry: registry})

	err := system.Update(2.0)
	if !errors.Is(err, anim.ErrUnsupportedWrapMode) {
		t.Errorf("hard errors must propagate through the system, got %v", err)
	}
}

func TestUpdateSkipsEntitiesWithoutRegistry(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.AnimationComponent{})

	if err := system.Update(0.1); err != nil {
		t.Errorf("entities without a registry should be skipped, got %v", err)
	}
}
