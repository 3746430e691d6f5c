// Package ecs 提供宿主组件框架的最小实体/组件管理器。
// 动画子系统作为组件挂载在实体上，由 systems 包的 AnimationSystem
// 在每个 tick 驱动。
package ecs

import "reflect"

// EntityID 是实体的唯一标识符。0 保留为无效 ID。
type EntityID uint64

// EntityManager 管理所有实体及其组件。
// 组件按 reflect.Type 索引，每个实体每种组件类型至多一个实例。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]interface{}

	// 延迟删除队列：销毁在 RemoveMarkedEntities 时统一执行，
	// 避免系统遍历期间修改实体集合
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例。
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
	}
}

// CreateEntity 创建新实体并返回唯一 ID。
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除（不立即删除）。
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件。实体不存在时为 no-op。
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件。
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// HasComponent 检查实体是否拥有特定类型组件。
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体。
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetComponent 获取实体的 T 类型组件。
// 类型参数通常是指针类型，如 GetComponent[*components.AnimationComponent]。
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// GetEntitiesWith1 查询拥有 T 类型组件的所有实体。
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	want := reflect.TypeOf(zero)

	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, found := compMap[want]; found {
			result = append(result, id)
		}
	}
	return result
}
