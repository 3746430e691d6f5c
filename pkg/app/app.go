// Package app 提供演示应用的核心包装器。
//
// 该包把初始化逻辑从 main 包提取出来：装载播放配置和剪辑库、
// 装配 ECS 宿主与动画系统，并实现 ebiten.Game 接口驱动每帧更新。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/decker502/animkit/pkg/anim"
	"github.com/decker502/animkit/pkg/components"
	"github.com/decker502/animkit/pkg/config"
	"github.com/decker502/animkit/pkg/ecs"
	"github.com/decker502/animkit/pkg/game"
	"github.com/decker502/animkit/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// 演示窗口的逻辑尺寸
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LibraryPath 剪辑库文件路径
	LibraryPath string
	// PlaybackPath 播放配置文件路径
	PlaybackPath string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口。
// 每个 tick 以固定 1/60 秒的帧间隔驱动动画系统。
type App struct {
	entityManager *ecs.EntityManager
	animSystem    *systems.AnimationSystem
	sprite        *systems.SpritePlayer
	registry      *anim.Registry

	// square 演示用的姿态载体：一个纯色方块，按当前姿态变换绘制
	square *ebiten.Image

	verbose bool
}

// NewApp 创建并初始化演示应用。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载播放配置；缺失时回退到默认配置
	playback, err := config.LoadPlaybackConfig(cfg.PlaybackPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using default playback config)", err)
		playback = config.DefaultPlaybackConfig()
	}

	// gdata 持久化的运行时设置覆盖静态配置的 auto_start / wrap mode
	gdataManager, err := gdata.Open(gdata.Config{AppName: "animkit"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("settings manager init failed: %w", err)
	}
	settings := settingsManager.GetSettings()

	// 加载剪辑库（资源装载边界）
	library, err := game.LoadClipLibrary(cfg.LibraryPath)
	if err != nil {
		return nil, fmt.Errorf("clip library load failed: %w", err)
	}

	// 装配注册表：精灵具体化作为播放器钩子注入
	sprite := systems.NewSpritePlayer()
	registry := anim.NewRegistry(sprite)

	wrapMode, ok := anim.ParseWrapMode(settings.DefaultWrapMode)
	if !ok {
		wrapMode = playback.WrapMode()
	}
	registry.SetDefaultWrapMode(wrapMode)

	library.PopulateRegistry(registry, playback.ClipIDs, playback.DefaultClipID)

	// 装配 ECS 宿主
	em := ecs.NewEntityManager()
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.AnimationComponent{
		Registry: registry,
		AutoPlay: settings.AutoStart,
		Loaded:   true, // 剪辑注册完成，下一 tick 触发 on-ready
	})

	log.Printf("[App] Initialized: %d clips, default='%s', auto_start=%v, wrap=%s",
		registry.ClipCount(), registry.DefaultClip(), settings.AutoStart, wrapMode)

	square := ebiten.NewImage(32, 32)
	square.Fill(color.White)

	return &App{
		entityManager: em,
		animSystem:    systems.NewAnimationSystem(em),
		sprite:        sprite,
		registry:      registry,
		square:        square,
		verbose:       cfg.Verbose,
	}, nil
}

// Update 更新动画逻辑，每个 tick 调用一次（通常每秒 60 次）。
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	return a.animSystem.Update(deltaTime)
}

// Draw 按当前插值姿态绘制演示方块。
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 32, G: 32, B: 48, A: 255})

	if !a.sprite.HasPose() {
		return
	}
	pose := a.sprite.Pose()

	op := &ebiten.DrawImageOptions{}
	// 以方块中心为变换原点
	op.GeoM.Translate(-16, -16)
	op.GeoM.Scale(pose.ScaleX, pose.ScaleY)
	op.GeoM.Rotate(pose.Rotation * math.Pi / 180)
	op.GeoM.Translate(ScreenWidth/2+pose.X, ScreenHeight/2+pose.Y)
	op.ColorScale.ScaleAlpha(float32(pose.Alpha))
	screen.DrawImage(a.square, op)
}

// Layout 返回应用的逻辑屏幕尺寸。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Registry 返回动画注册表，供入口代码做播放控制。
func (a *App) Registry() *anim.Registry {
	return a.registry
}
