// Package anim implements the animkit playback core: named animation
// clips, per-clip playback states, a name-indexed registry, and the
// generic keyframe advancement engine (Player).
//
// 该包不依赖任何渲染后端。渲染/蒙皮等具体化通过 Hooks 接口注入到
// Player 中，核心只负责时间推进、帧游标与包裹策略。
package anim

import (
	"github.com/decker502/animkit/internal/keyframe"
)

// Clip 是一个命名的、构造后不可变的动画剪辑定义。
// 多个 Clip 可以共享同一条 keyframe.Track（子区间视图），数据不复制。
type Clip struct {
	// Name 剪辑名称，在一个 Registry 内唯一
	Name string

	// Track 关键帧轨道（只读共享）
	Track *keyframe.Track

	// FirstFrame / LastFrame 定义该剪辑在轨道上的逻辑区间。
	// 完整剪辑为 [0, Track.LastIndex()]。
	FirstFrame int
	LastFrame  int
}

// NewClip 基于完整轨道创建剪辑。
func NewClip(name string, track *keyframe.Track) *Clip {
	return &Clip{
		Name:       name,
		Track:      track,
		FirstFrame: 0,
		LastFrame:  track.LastIndex(),
	}
}

// NewSubClip 基于父剪辑的 [firstFrame, lastFrame] 子区间创建剪辑视图。
// 子剪辑与父剪辑共享同一条轨道，从不复制帧数据。
func NewSubClip(parent *Clip, name string, firstFrame, lastFrame int) *Clip {
	return &Clip{
		Name:       name,
		Track:      parent.Track,
		FirstFrame: firstFrame,
		LastFrame:  lastFrame,
	}
}
