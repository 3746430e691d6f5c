// Package components 定义宿主框架使用的纯数据组件。
// 遵循数据与行为分离原则：组件不携带方法，所有动画逻辑在
// systems.AnimationSystem 中实现。
package components

import (
	"github.com/decker502/animkit/pkg/anim"
)

// AnimationComponent 把一个动画注册表挂载到实体上。
// 每个实体至多一个注册表；注册表内部再按名称管理多个剪辑状态。
type AnimationComponent struct {
	// Registry 该实体的剪辑状态注册表
	Registry *anim.Registry

	// AutoPlay 资源装载完成后是否自动播放默认剪辑
	// （对应持久化配置的 auto_start 字段）
	AutoPlay bool

	// Loaded 资源装载完成标志，由宿主在剪辑注册完成后设置
	Loaded bool

	// ReadyFired "on ready" 钩子是否已执行。
	// AnimationSystem 在 Loaded 变为 true 后的第一个 tick 执行一次
	// 自动播放逻辑，然后置位该标志。
	ReadyFired bool
}
