package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlaybackSettings 运行时可调的播放设置。
// 只有自动播放开关和默认包裹模式会被持久化（剪辑标识列表属于
// 静态配置文件，不随运行时设置保存）。
type PlaybackSettings struct {
	// AutoStart 装载完成后是否自动播放默认剪辑
	AutoStart bool `yaml:"autoStart"`

	// DefaultWrapMode 新建状态的包裹模式："once" / "loop" / "pingpong"
	DefaultWrapMode string `yaml:"defaultWrapMode"`
}

// DefaultPlaybackSettings 返回默认设置。
func DefaultPlaybackSettings() *PlaybackSettings {
	return &PlaybackSettings{
		AutoStart:       true,
		DefaultWrapMode: "loop",
	}
}

// SettingsManager 播放设置管理器。
// 负责设置的加载、保存和内存管理；gdata 不可用时退化为纯内存模式。
type SettingsManager struct {
	gdataManager *gdata.Manager // 跨平台存储管理器，可为 nil（降级模式）
	settings     *PlaybackSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "playback"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置。
// gdataManager 为 nil 时使用默认设置，仅在内存中生效。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultPlaybackSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置。
// gdataManager 为 nil 或数据不存在时使用默认设置。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultPlaybackSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultPlaybackSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultPlaybackSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded PlaybackSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultPlaybackSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata。
// gdataManager 为 nil 时静默成功（降级模式）。
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置实例。
func (sm *SettingsManager) GetSettings() *PlaybackSettings {
	return sm.settings
}

// SetAutoStart 设置自动播放开关。
// 仅修改内存中的设置，需调用 Save() 持久化。
func (sm *SettingsManager) SetAutoStart(enabled bool) {
	sm.settings.AutoStart = enabled
}

// SetDefaultWrapMode 设置默认包裹模式字符串。
// 仅修改内存中的设置，需调用 Save() 持久化。
func (sm *SettingsManager) SetDefaultWrapMode(mode string) {
	sm.settings.DefaultWrapMode = mode
}
