// Package systems 包含驱动动画组件的宿主系统和渲染具体化。
package systems

import (
	"fmt"
	"log"

	"github.com/decker502/animkit/pkg/components"
	"github.com/decker502/animkit/pkg/ecs"
)

// AnimationSystem 是动画子系统的每帧驱动器。
//
// 外部调度器每个 tick 调用一次 Update，传入本帧的 delta time（秒）。
// 系统遍历所有携带 AnimationComponent 的实体：
//  1. 装载完成后的第一个 tick 执行 "on ready" 钩子（自动播放默认剪辑）
//  2. 把 delta 转发给实体的注册表，由各状态的播放器推进
//
// 整个子系统单线程同步运行，无内部锁。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统。
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进一个 tick。
// 播放器返回的硬错误（如未指定的包裹模式）中止遍历并向上传播，
// 由宿主决定如何呈现。
func (s *AnimationSystem) Update(deltaTime float64) error {
	entities := ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager)

	for _, id := range entities {
		comp, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if !ok || comp.Registry == nil {
			continue
		}

		// on-ready 钩子：装载完成后的第一个 tick 执行一次
		if comp.Loaded && !comp.ReadyFired {
			comp.ReadyFired = true
			if comp.AutoPlay {
				if comp.Registry.PlayDefault() {
					log.Printf("[AnimationSystem] entity %d: auto-playing default clip '%s'",
						id, comp.Registry.DefaultClip())
				} else {
					log.Printf("[AnimationSystem] entity %d: auto-play requested but no default clip is set", id)
				}
			}
		}

		if err := comp.Registry.Update(deltaTime); err != nil {
			return fmt.Errorf("entity %d animation update: %w", id, err)
		}
	}

	return nil
}
