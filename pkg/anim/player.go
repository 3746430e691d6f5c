package anim

import (
	"github.com/decker502/animkit/internal/keyframe"
)

// Hooks 是 Player 的扩展点，由具体化（如精灵渲染、蒙皮）在构造时注入。
// 核心引擎只通过该接口回调，不依赖任何具体渲染实现。
//
// 三个回调的触发时机：
//   - ClipInitialized: Start 时，以及任何时间回退（回绕/外部 seek）时
//   - KeyframeApplied: 每越过一个关键帧触发一次，索引严格递增
//   - PostUpdate:      每次 Update 在 SetTime 完成后触发一次
type Hooks interface {
	ClipInitialized(clip *Clip, state *State)
	KeyframeApplied(index int, kf keyframe.Keyframe)
	PostUpdate(clip *Clip, state *State)
}

// nopHooks 让不关心回调的调用方可以传 nil Hooks。
type nopHooks struct{}

func (nopHooks) ClipInitialized(*Clip, *State)          {}
func (nopHooks) KeyframeApplied(int, keyframe.Keyframe) {}
func (nopHooks) PostUpdate(*Clip, *State)               {}

// Player 驱动单个激活剪辑的时间推进，维护单调递增的关键帧游标。
//
// 游标不变式：currentKeyframe 始终指向第一个时间戳严格大于 currentTime
// 的关键帧，即所有索引 < currentKeyframe 的关键帧都已"应用"。
// 时间相对上次记录值回退时，游标重置为 0 并从头重扫。
//
// Player 只借用 State（State 归 Registry 所有），不做并发保护 ——
// 整个子系统运行在宿主的单线程 per-frame tick 内。
type Player struct {
	hooks Hooks

	clip  *Clip
	state *State

	// currentKeyframe 下一个未应用关键帧的索引
	currentKeyframe int

	// currentTime 上次 SetTime 记录的时间，用于检测回退
	currentTime float64
}

// NewPlayer 创建播放器。hooks 为 nil 时使用空实现。
func NewPlayer(hooks Hooks) *Player {
	if hooks == nil {
		hooks = nopHooks{}
	}
	return &Player{hooks: hooks}
}

// Clip returns the active clip, or nil before Start.
func (p *Player) Clip() *Clip { return p.clip }

// State returns the borrowed state, or nil before Start.
func (p *Player) State() *State { return p.state }

// CurrentKeyframe returns the index of the first unapplied keyframe.
func (p *Player) CurrentKeyframe() int { return p.currentKeyframe }

// CurrentTime returns the last recorded playback time in seconds.
func (p *Player) CurrentTime() float64 { return p.currentTime }

// Start 开始播放一个剪辑：
//   - 游标置为 max(0, state.FirstFrame)
//   - 已播放时间置为该关键帧的时间戳
//   - state.Length 重新计算为 min(state.LastFrame, 末帧) 处的时间戳
//   - 启用状态并触发 ClipInitialized
//
// clip 为 nil 时返回 ErrNilClip，轨道为空时返回 ErrEmptyTrack，状态不变。
func (p *Player) Start(clip *Clip, state *State) error {
	if clip == nil {
		return ErrNilClip
	}
	if clip.Track == nil || clip.Track.Len() == 0 {
		return ErrEmptyTrack
	}

	p.clip = clip
	p.state = state

	cursor := state.FirstFrame
	if cursor < 0 {
		cursor = 0
	}
	p.currentKeyframe = cursor

	// 游标可能被配置到轨道末帧之后，取时间戳时夹回有效区间
	tsIndex := cursor
	if last := clip.Track.LastIndex(); tsIndex > last {
		tsIndex = last
	}
	p.currentTime = clip.Track.At(tsIndex).Time

	state.Time = p.currentTime
	state.Length = clipLength(clip, state.LastFrame)
	state.Enabled = true

	p.hooks.ClipInitialized(clip, state)
	return nil
}

// Pause 暂停推进：只清除启用标志，游标和时间保持不变。
func (p *Player) Pause() {
	if p.state != nil {
		p.state.Enabled = false
	}
}

// Resume 恢复推进：只设置启用标志，游标和时间保持不变。
func (p *Player) Resume() {
	if p.state != nil {
		p.state.Enabled = true
	}
}

// SetTime 将播放时间设置到 target（正常推进和外部 seek 共用此路径）。
//
// target 小于上次记录的时间时视为回退（回绕/循环重启）：游标重置为 0
// 并重新触发 ClipInitialized。随后从当前游标向前扫描，对每个时间戳
// <= target 的关键帧触发 KeyframeApplied 并推进游标，遇到第一个时间戳
// 大于 target 的关键帧停止。
func (p *Player) SetTime(target float64) {
	if p.clip == nil || p.state == nil {
		return
	}

	if target < p.currentTime {
		p.currentKeyframe = 0
		p.hooks.ClipInitialized(p.clip, p.state)
	}

	track := p.clip.Track
	last := track.LastIndex()
	for p.currentKeyframe <= last {
		kf := track.At(p.currentKeyframe)
		if kf.Time > target {
			break
		}
		p.hooks.KeyframeApplied(p.currentKeyframe, kf)
		p.currentKeyframe++
	}

	p.currentTime = target
	p.state.Time = target
}

// Update 推进一个 tick。没有激活剪辑或状态未启用时为 no-op。
//
// 推进流程：time += delta * speed；越过 Length 时按 WrapMode 处理：
//   - WrapOnce:     停用状态并立即返回（本 tick 不再调用 SetTime）
//   - WrapLoop:     time 减去一个 Length（每 tick 只回绕一次）
//   - WrapPingPong: 翻转 Speed 符号，time 不做夹取
//   - WrapDefault:  返回 ErrUnsupportedWrapMode
//
// 随后把 time 推入 SetTime，最后触发 PostUpdate。
func (p *Player) Update(delta float64) error {
	if p.clip == nil || p.state == nil || !p.state.Enabled {
		return nil
	}

	st := p.state
	st.Time += delta * st.Speed

	if st.Time > st.Length {
		switch st.WrapMode {
		case WrapOnce:
			st.Enabled = false
			return nil
		case WrapLoop:
			st.Time -= st.Length
		case WrapPingPong:
			st.Speed = -st.Speed
		default:
			return ErrUnsupportedWrapMode
		}
	}

	p.SetTime(st.Time)
	p.hooks.PostUpdate(p.clip, st)
	return nil
}
