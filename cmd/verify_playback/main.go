// verify_playback - 播放引擎验证程序
// 无窗口运行：构造标准测试轨道，逐项验证包裹策略、游标回退和
// 未实现操作的契约，输出 PASS/FAIL 报告。
package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/decker502/animkit/internal/keyframe"
	"github.com/decker502/animkit/pkg/anim"
)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-28s | %s", status, testName, message)
}

// ========== 测试夹具 ==========

// recordingHooks 记录关键帧回调序列
type recordingHooks struct {
	applied []int
	inits   int
}

func (h *recordingHooks) ClipInitialized(*anim.Clip, *anim.State) { h.inits++ }
func (h *recordingHooks) KeyframeApplied(index int, _ keyframe.Keyframe) {
	h.applied = append(h.applied, index)
}
func (h *recordingHooks) PostUpdate(*anim.Clip, *anim.State) {}

func standardTrack() *keyframe.Track {
	return &keyframe.Track{Keyframes: []keyframe.Keyframe{
		{Time: 0.0},
		{Time: 0.5},
		{Time: 1.0},
	}}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ========== 验证项 ==========

func verifyLoopWrap() {
	hooks := &recordingHooks{}
	r := anim.NewRegistry(hooks)
	r.AddClip(anim.NewClip("walk", standardTrack()), "walk")
	r.Play("walk")

	_ = r.Update(0.6)
	_ = r.Update(0.6)

	st := r.State("walk")
	passed := approx(st.Time, 0.2) &&
		len(hooks.applied) == 3 &&
		hooks.applied[0] == 0 && hooks.applied[1] == 1 && hooks.applied[2] == 0
	addReport("loop_wrap", passed,
		fmt.Sprintf("time=%.2f applied=%v", st.Time, hooks.applied))
}

func verifyOnceWrap() {
	r := anim.NewRegistry(nil)
	r.SetDefaultWrapMode(anim.WrapOnce)
	r.AddClip(anim.NewClip("walk", standardTrack()), "walk")
	r.Play("walk")

	_ = r.Update(1.2)

	st := r.State("walk")
	passed := !st.Enabled && approx(st.Time, 1.2)
	addReport("once_wrap", passed,
		fmt.Sprintf("enabled=%v time=%.2f", st.Enabled, st.Time))
}

func verifyPingPongWrap() {
	r := anim.NewRegistry(nil)
	r.SetDefaultWrapMode(anim.WrapPingPong)
	r.AddClip(anim.NewClip("walk", standardTrack()), "walk")
	r.Play("walk")

	_ = r.Update(1.2)
	st := r.State("walk")
	flipped := approx(st.Speed, -1.0) && approx(st.Time, 1.2)

	_ = r.Update(0.3)
	passed := flipped && approx(st.Time, 0.9)
	addReport("pingpong_wrap", passed,
		fmt.Sprintf("speed=%.1f time=%.2f", st.Speed, st.Time))
}

func verifyBackwardSeek() {
	hooks := &recordingHooks{}
	r := anim.NewRegistry(hooks)
	r.AddClip(anim.NewClip("walk", standardTrack()), "walk")
	r.Play("walk")

	player := r.PlayerFor("walk")
	player.SetTime(0.8)
	initsBefore := hooks.inits
	hooks.applied = nil

	player.SetTime(0.2)

	passed := hooks.inits == initsBefore+1 &&
		len(hooks.applied) == 1 && hooks.applied[0] == 0 &&
		player.CurrentKeyframe() == 1
	addReport("backward_seek", passed,
		fmt.Sprintf("inits=%d applied=%v cursor=%d", hooks.inits, hooks.applied, player.CurrentKeyframe()))
}

func verifyUnimplemented() {
	r := anim.NewRegistry(nil)
	r.AddClip(anim.NewClip("walk", standardTrack()), "walk")

	rewindErr := r.Rewind()
	queuedErr := r.PlayQueued("walk", anim.QueueCompleteOthers)

	passed := errors.Is(rewindErr, anim.ErrNotImplemented) &&
		errors.Is(queuedErr, anim.ErrNotImplemented) &&
		!r.IsPlayingAny()
	addReport("unimplemented_ops", passed,
		fmt.Sprintf("rewind=%v queued=%v", rewindErr, queuedErr))
}

func verifyUnsupportedWrapMode() {
	r := anim.NewRegistry(nil)
	r.SetDefaultWrapMode(anim.WrapDefault)
	r.AddClip(anim.NewClip("walk", standardTrack()), "walk")
	r.Play("walk")

	err := r.Update(2.0)
	passed := errors.Is(err, anim.ErrUnsupportedWrapMode) && errors.Is(err, anim.ErrNotImplemented)
	addReport("unsupported_wrap", passed, fmt.Sprintf("err=%v", err))
}

func main() {
	log.SetFlags(0)
	log.Println("========== animkit playback verification ==========")

	verifyLoopWrap()
	verifyOnceWrap()
	verifyPingPongWrap()
	verifyBackwardSeek()
	verifyUnimplemented()
	verifyUnsupportedWrapMode()

	failed := 0
	for _, report := range validationReports {
		if !report.Passed {
			failed++
		}
	}

	log.Printf("==========  %d/%d checks passed  ==========",
		len(validationReports)-failed, len(validationReports))
	if failed > 0 {
		os.Exit(1)
	}
}
