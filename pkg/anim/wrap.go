package anim

import "strings"

// WrapMode 定义播放时间超过剪辑长度时的处理策略
type WrapMode int

const (
	// WrapDefault 是未指定的包裹模式。携带该模式的状态在越界时会让
	// Update 返回 ErrUnsupportedWrapMode —— 这是刻意保留的未实现分支，
	// 不会退化为 WrapOnce。
	WrapDefault WrapMode = iota

	// WrapOnce 播放一次后停用状态，时间保持越界时的原始值
	WrapOnce

	// WrapLoop 循环播放：时间减去一个剪辑长度。
	// 每 tick 只回绕一次，不处理大于多个剪辑长度的 delta。
	WrapLoop

	// WrapPingPong 乒乓播放：翻转速度符号。
	// 注意：时间本身不会被夹回 [0, length] 区间，下一 tick 的负向
	// delta 从越界值开始累加（与原始行为保持一致）。
	WrapPingPong
)

// String returns the config-file spelling of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapOnce:
		return "once"
	case WrapLoop:
		return "loop"
	case WrapPingPong:
		return "pingpong"
	default:
		return "default"
	}
}

// ParseWrapMode 解析配置文件中的包裹模式字符串。
//
// 未知或空字符串返回 (WrapDefault, false)，由调用方决定回退策略 ——
// 配置层会显式回退到 WrapLoop，而不是依赖零值。
func ParseWrapMode(s string) (WrapMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once":
		return WrapOnce, true
	case "loop":
		return WrapLoop, true
	case "pingpong", "ping_pong", "ping-pong":
		return WrapPingPong, true
	default:
		return WrapDefault, false
	}
}
