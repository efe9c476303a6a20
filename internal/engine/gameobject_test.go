package engine

import "testing"

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()                   { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

type enterRecorder struct {
	BaseComponent
	entered []*GameObject
}

func (r *enterRecorder) OnCollisionEnter(other *GameObject) { r.entered = append(r.entered, other) }
func (r *enterRecorder) OnCollisionExit(other *GameObject)  {}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Transform.Scale.X != 1 || obj.Transform.Scale.Y != 1 || obj.Transform.Scale.Z != 1 {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*countingComponent](obj) != nil {
		t.Error("GetComponent should return nil for a missing type")
	}

	if GetComponent[*BaseComponent](nil) != nil {
		t.Error("GetComponent should tolerate a nil GameObject")
	}
}

func TestFindComponentByInterface(t *testing.T) {
	obj := NewGameObject("Crate")
	obj.AddComponent(&countingComponent{})
	rec := &enterRecorder{}
	obj.AddComponent(rec)

	handler, ok := FindComponent[CollisionHandler](obj)
	if !ok {
		t.Fatal("FindComponent should find the CollisionHandler")
	}
	other := NewGameObject("Other")
	handler.OnCollisionEnter(other)
	if len(rec.entered) != 1 || rec.entered[0] != other {
		t.Error("FindComponent returned the wrong component")
	}

	if _, ok := FindComponent[LookProvider](obj); ok {
		t.Error("FindComponent should report false for an unimplemented interface")
	}

	if n := len(FindComponents[Component](obj)); n != 2 {
		t.Errorf("Expected 2 components, got %d", n)
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start once, got %d", comp.starts)
	}
}

func TestAddComponentAfterStartStartsIt(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.starts != 1 {
		t.Errorf("Expected late component to start, got %d starts", comp.starts)
	}
}

func TestInactiveGameObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 1 {
		t.Errorf("Expected 1 update, got %d", comp.updates)
	}
}
