package anim

// State 是一个剪辑在一个 Registry 内的可变播放游标。
// 每个 (Registry, 剪辑名) 对应且仅对应一个 State。
//
// State 是纯数据，推进逻辑全部在 Player 中（数据与行为分离）。
type State struct {
	// Clip 该状态包裹的剪辑（只读引用）
	Clip *Clip

	// Enabled 是否参与帧推进。false 时 Player.Update 直接跳过。
	Enabled bool

	// Time 已播放时间（秒）
	Time float64

	// Speed 速度倍率（带符号；WrapPingPong 回绕时会翻转符号）
	Speed float64

	// Length 剪辑长度（秒）。在状态创建/重注册时由剪辑的帧时间戳推导，
	// 此后不再修改（Player.Start 重新计算属于重注册路径）。
	Length float64

	// WrapMode 越界时间的处理策略
	WrapMode WrapMode

	// FirstFrame / LastFrame 播放区间（帧索引）
	FirstFrame int
	LastFrame  int
}

// newState 基于剪辑创建初始状态。
// Length 由剪辑最后一个可用帧的时间戳推导。
func newState(clip *Clip, mode WrapMode) *State {
	s := &State{
		Clip:       clip,
		Enabled:    false,
		Time:       0,
		Speed:      1.0,
		WrapMode:   mode,
		FirstFrame: clip.FirstFrame,
		LastFrame:  clip.LastFrame,
	}
	s.Length = clipLength(clip, clip.LastFrame)
	return s
}

// clipLength 返回剪辑在 lastFrame 处的长度（秒）。
// lastFrame 超界时夹到轨道末帧。
func clipLength(clip *Clip, lastFrame int) float64 {
	last := clip.Track.LastIndex()
	if last < 0 {
		return 0
	}
	if lastFrame < last {
		last = lastFrame
	}
	if last < 0 {
		return 0
	}
	return clip.Track.At(last).Time
}
