// Package config 定义 animkit 的配置文件结构与加载逻辑。
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/animkit/pkg/anim"
	"gopkg.in/yaml.v3"
)

// PlaybackConfig 是动画子系统的持久化布局。
// 剪辑标识、自动播放开关和默认包裹模式是仅有的序列化配置字段；
// 剪辑内容本身由剪辑库文件外部装载，不属于此处的持久化状态。
type PlaybackConfig struct {
	Version string `yaml:"version"`

	// ClipIDs 启动时要装载的剪辑标识列表
	ClipIDs []int `yaml:"clip_ids"`

	// DefaultClipID 默认剪辑的标识。装载阶段命中该标识的剪辑
	// 会被标记为注册表的默认剪辑。
	DefaultClipID int `yaml:"default_clip_id"`

	// AutoStart 装载完成后是否自动播放默认剪辑
	AutoStart bool `yaml:"auto_start"`

	// DefaultWrapMode 新建状态的包裹模式："once" / "loop" / "pingpong"
	DefaultWrapMode string `yaml:"default_wrap_mode"`
}

// DefaultPlaybackConfig 返回默认配置。
func DefaultPlaybackConfig() *PlaybackConfig {
	return &PlaybackConfig{
		Version:         "1",
		AutoStart:       true,
		DefaultWrapMode: "loop",
	}
}

// LoadPlaybackConfig 从 YAML 文件加载播放配置。
//
// 文件缺失或解析失败时返回错误，由调用方决定是否回退到默认配置。
func LoadPlaybackConfig(path string) (*PlaybackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read playback config '%s': %w", path, err)
	}

	cfg := &PlaybackConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse playback config '%s': %w", path, err)
	}

	if cfg.Version == "" {
		log.Printf("[PlaybackConfig] Warning: config file '%s' has no version field", path)
	}
	if len(cfg.ClipIDs) == 0 {
		log.Printf("[PlaybackConfig] Warning: config file '%s' lists no clip ids", path)
	}

	log.Printf("[PlaybackConfig] Loaded playback config (version=%s, clips=%d, auto_start=%v, wrap=%s)",
		cfg.Version, len(cfg.ClipIDs), cfg.AutoStart, cfg.DefaultWrapMode)
	return cfg, nil
}

// WrapMode 解析配置的包裹模式字符串。
// 缺失或无法识别时显式回退到 WrapLoop —— 不依赖 WrapMode 的零值，
// 因为零值 WrapDefault 是会让播放失败的未实现分支。
func (c *PlaybackConfig) WrapMode() anim.WrapMode {
	mode, ok := anim.ParseWrapMode(c.DefaultWrapMode)
	if !ok {
		if c.DefaultWrapMode != "" {
			log.Printf("[PlaybackConfig] Warning: unknown wrap mode '%s', falling back to loop", c.DefaultWrapMode)
		}
		return anim.WrapLoop
	}
	return mode
}
