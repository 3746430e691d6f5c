package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/animkit/pkg/anim"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playback.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadPlaybackConfig(t *testing.T) {
	path := writeConfig(t, `
version: "1"
clip_ids: [101, 102, 103]
default_clip_id: 101
auto_start: true
default_wrap_mode: loop
`)

	cfg, err := LoadPlaybackConfig(path)
	if err != nil {
		t.Fatalf("LoadPlaybackConfig failed: %v", err)
	}

	if len(cfg.ClipIDs) != 3 || cfg.ClipIDs[0] != 101 {
		t.Errorf("clip ids mismatch: %v", cfg.ClipIDs)
	}
	if cfg.DefaultClipID != 101 {
		t.Errorf("default clip id = %d, want 101", cfg.DefaultClipID)
	}
	if !cfg.AutoStart {
		t.Error("auto_start should be true")
	}
	if cfg.WrapMode() != anim.WrapLoop {
		t.Errorf("wrap mode = %v, want WrapLoop", cfg.WrapMode())
	}
}

func TestLoadPlaybackConfigMissingFile(t *testing.T) {
	if _, err := LoadPlaybackConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestLoadPlaybackConfigMalformed(t *testing.T) {
	path := writeConfig(t, "clip_ids: [1, 2")
	if _, err := LoadPlaybackConfig(path); err == nil {
		t.Error("malformed config should fail")
	}
}

// TestWrapModeFallback 未知/缺失的包裹模式显式回退到 loop，
// 绝不落入零值 WrapDefault（那是会让播放失败的未实现分支）
func TestWrapModeFallback(t *testing.T) {
	cases := []struct {
		raw  string
		want anim.WrapMode
	}{
		{"once", anim.WrapOnce},
		{"loop", anim.WrapLoop},
		{"pingpong", anim.WrapPingPong},
		{"ping_pong", anim.WrapPingPong},
		{"PingPong", anim.WrapPingPong},
		{"", anim.WrapLoop},
		{"bogus", anim.WrapLoop},
	}

	for _, tc := range cases {
		cfg := &PlaybackConfig{DefaultWrapMode: tc.raw}
		if got := cfg.WrapMode(); got != tc.want {
			t.Errorf("WrapMode(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestDefaultPlaybackConfig(t *testing.T) {
	cfg := DefaultPlaybackConfig()
	if !cfg.AutoStart {
		t.Error("default config should auto-start")
	}
	if cfg.WrapMode() != anim.WrapLoop {
		t.Error("default wrap mode should be loop")
	}
}
