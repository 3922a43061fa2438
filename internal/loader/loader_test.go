package loader

import (
	"reflect"
	"testing"

	"github.com/goplus/ixgo"
)

// testStruct mirrors the shape of a loaded hook class: a mix of
// exported and unexported fields accessed by name.
type testStruct struct {
	Exported   string
	unexported func() int
	name       string
}

func newTestElem() (*StructElem, *testStruct) {
	ts := &testStruct{
		Exported:   "x",
		unexported: func() int { return 42 },
		name:       "setup_compile_commands",
	}
	return &StructElem{elem: reflect.ValueOf(ts).Elem()}, ts
}

func TestValueUnexportedField(t *testing.T) {
	se, _ := newTestElem()

	if got := se.Value("name").(string); got != "setup_compile_commands" {
		t.Errorf("Value(name) = %q", got)
	}
	fn := se.Value("unexported").(func() int)
	if fn() != 42 {
		t.Error("Value(unexported) returned wrong func")
	}
}

func TestSetValueUnexportedField(t *testing.T) {
	se, ts := newTestElem()

	se.SetValue("name", "custom")
	if ts.name != "custom" {
		t.Errorf("after SetValue, name = %q", ts.name)
	}
}

func TestNewHookLoader(t *testing.T) {
	l := NewHookLoader(ixgo.NewContext(ixgo.SupportMultipleInterp))
	if _, ok := l.(*HookLoader); !ok {
		t.Errorf("NewHookLoader returned %T", l)
	}
}
