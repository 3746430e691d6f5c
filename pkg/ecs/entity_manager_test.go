package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testClockComponent struct {
	Elapsed float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 实体 ID 唯一且从 1 开始
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testClockComponent{Elapsed: 1.5})

	comp, found := GetComponent[*testClockComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if comp.Elapsed != 1.5 {
		t.Errorf("Component data mismatch, expected 1.5, got %f", comp.Elapsed)
	}

	// 未添加的类型查不到
	if _, found := GetComponent[*testTagComponent](em, id); found {
		t.Error("Should not find a component that was never added")
	}

	// 未知实体查不到
	if _, found := GetComponent[*testClockComponent](em, 999); found {
		t.Error("Should not find components on unknown entities")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	clockType := reflect.TypeOf(&testClockComponent{})
	if em.HasComponent(id, clockType) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testClockComponent{})
	if !em.HasComponent(id, clockType) {
		t.Error("Should have component after adding")
	}

	em.RemoveComponent(id, clockType)
	if em.HasComponent(id, clockType) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testClockComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在（延迟删除）
	if _, found := GetComponent[*testClockComponent](em, id); !found {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if _, found := GetComponent[*testClockComponent](em, id); found {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith1(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testClockComponent{})
	em.AddComponent(id1, &testTagComponent{Name: "a"})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTagComponent{Name: "b"})

	tagged := GetEntitiesWith1[*testTagComponent](em)
	if len(tagged) != 2 {
		t.Errorf("Expected 2 entities with tag component, got %d", len(tagged))
	}

	clocked := GetEntitiesWith1[*testClockComponent](em)
	if len(clocked) != 1 || clocked[0] != id1 {
		t.Errorf("Expected only entity %d with clock component, got %v", id1, clocked)
	}
}
