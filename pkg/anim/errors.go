package anim

import (
	"errors"
	"fmt"
)

// 错误分类（对应错误处理设计）：
//   - NotFound（软错误）：未知的剪辑名，所有查询/播放操作返回 false 或 nil，不产生 error
//   - InvalidArgument（硬错误）：用 nil 剪辑启动播放器
//   - Unimplemented（硬错误）：Rewind / PlayQueued / 未指定的 WrapMode，
//     必须显式失败，让调用方能区分"功能缺失"和"静默成功"
var (
	// ErrNilClip is returned by Player.Start when given a nil clip.
	ErrNilClip = errors.New("anim: clip is nil")

	// ErrEmptyTrack is returned by Player.Start when the clip's track has
	// no keyframes. The parser rejects empty tracks, but NewClip accepts
	// any track without validating it.
	ErrEmptyTrack = errors.New("anim: clip track has no keyframes")

	// ErrNotImplemented marks operations that are deliberately absent
	// (Rewind, PlayQueued). Callers probe with errors.Is.
	ErrNotImplemented = errors.New("anim: not implemented")

	// ErrUnsupportedWrapMode is returned by Player.Update when a state
	// carries the unspecified WrapDefault mode. It wraps ErrNotImplemented
	// because the default-mode branch is an unimplemented feature, not a
	// silent fallback to WrapOnce.
	ErrUnsupportedWrapMode = fmt.Errorf("anim: unsupported wrap mode: %w", ErrNotImplemented)
)
