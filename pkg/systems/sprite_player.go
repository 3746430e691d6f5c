package systems

import (
	"github.com/decker502/animkit/internal/keyframe"
	"github.com/decker502/animkit/pkg/anim"
)

// SpritePlayer 是 anim.Hooks 的渲染具体化：记录最近应用的关键帧姿态，
// 并在每次 PostUpdate 时向下一个关键帧做线性插值，供绘制端读取。
//
// 核心引擎对它一无所知 —— 它只是构造 Registry 时注入的一组回调。
// 一个 SpritePlayer 跟踪"最近一次被推进的状态"的姿态；注册表内同时
// 启用多个状态时，后更新的状态覆盖先更新的（演示渲染取最后者）。
type SpritePlayer struct {
	// lastIndex / lastKeyframe 最近一次 KeyframeApplied 的关键帧
	lastIndex    int
	lastKeyframe keyframe.Keyframe
	hasKeyframe  bool

	// current 插值后的当前姿态
	current keyframe.Pose
}

// NewSpritePlayer 创建精灵姿态具体化。
func NewSpritePlayer() *SpritePlayer {
	return &SpritePlayer{}
}

// ClipInitialized 重置插值起点（Start 或时间回退时触发）。
func (sp *SpritePlayer) ClipInitialized(clip *anim.Clip, state *anim.State) {
	sp.hasKeyframe = false
}

// KeyframeApplied 记录最新越过的关键帧。
func (sp *SpritePlayer) KeyframeApplied(index int, kf keyframe.Keyframe) {
	sp.lastIndex = index
	sp.lastKeyframe = kf
	sp.hasKeyframe = true
	sp.current = kf.Pose
}

// PostUpdate 在最近应用的关键帧和下一个关键帧之间做线性插值。
// 下一帧越界或两帧时间戳相同时直接停留在当前帧（不插值）。
func (sp *SpritePlayer) PostUpdate(clip *anim.Clip, state *anim.State) {
	if !sp.hasKeyframe {
		return
	}

	nextIndex := sp.lastIndex + 1
	if nextIndex > clip.Track.LastIndex() {
		sp.current = sp.lastKeyframe.Pose
		return
	}

	next := clip.Track.At(nextIndex)
	span := next.Time - sp.lastKeyframe.Time
	if span <= 0 {
		sp.current = sp.lastKeyframe.Pose
		return
	}

	t := (state.Time - sp.lastKeyframe.Time) / span
	sp.current = keyframe.LerpPose(sp.lastKeyframe.Pose, next.Pose, t)
}

// Pose 返回当前插值姿态。尚无关键帧时返回零值姿态。
func (sp *SpritePlayer) Pose() keyframe.Pose {
	return sp.current
}

// HasPose 返回是否已经应用过至少一个关键帧。
func (sp *SpritePlayer) HasPose() bool {
	return sp.hasKeyframe
}
