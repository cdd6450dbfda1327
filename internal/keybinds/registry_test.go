package keybinds

import (
	"testing"
)

func TestRegistry_MatchFallsBackToGlobal(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		key     string
		want    Action
		found   bool
	}{
		{ContextEditor, "ctrl+t", ActionNewTab, true},
		{ContextEditor, "ctrl+c", ActionQuitForce, true},
		{ContextConfirm, "y", ActionConfirm, true},
		{ContextConfirm, "esc", ActionCancel, true},
		{ContextRename, "enter", ActionTextSubmit, true},
		{ContextEditor, "a", "", false},
		{ContextHelp, "ctrl+t", "", false},
	}

	for _, tt := range tests {
		got, ok := r.Match(tt.context, tt.key)
		if ok != tt.found || got != tt.want {
			t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, got, ok, tt.want, tt.found)
		}
	}
}

func TestRegistry_ContextShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextHelp, "q", ActionCloseModal)

	if got, _ := r.Match(ContextHelp, "q"); got != ActionCloseModal {
		t.Errorf("Expected help binding to win, got %q", got)
	}
	if got, _ := r.Match(ContextEditor, "q"); got != ActionQuit {
		t.Errorf("Expected global binding, got %q", got)
	}
}

func TestRegistry_GetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBindingString(ContextEditor, ActionNextTab); got != "alt+right, ctrl+pgdown" {
		t.Errorf("Expected sorted keys, got %q", got)
	}
	if got := r.GetBindingString(ContextEditor, ActionQuit); got != "ctrl+q" {
		t.Errorf("Expected global fallback, got %q", got)
	}
	if got := r.GetBindingString(ContextRename, ActionExportTab); got != "unbound" {
		t.Errorf("Expected unbound, got %q", got)
	}
}

func TestRegistry_UnbindAction(t *testing.T) {
	r := NewDefaultRegistry()
	r.UnbindAction(ContextConfirm, ActionConfirm)

	for _, key := range []string{"y", "Y", "enter"} {
		if r.HasBinding(ContextConfirm, key) {
			t.Errorf("Expected %q to be unbound", key)
		}
	}
	if !r.HasBinding(ContextConfirm, "n") {
		t.Error("Expected cancel keys to remain")
	}
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	r := NewDefaultRegistry()
	clone := r.Clone()
	clone.Register(ContextEditor, "ctrl+t", ActionClearText)

	if got, _ := r.Match(ContextEditor, "ctrl+t"); got != ActionNewTab {
		t.Errorf("Expected original untouched, got %q", got)
	}
}

func TestRegistry_ListBindingsOrder(t *testing.T) {
	r := NewDefaultRegistry()
	list := r.ListBindings(ContextRename)

	if len(list) != 5 {
		t.Fatalf("Expected 2 rename + 3 global bindings, got %d", len(list))
	}
	if list[0].Context != ContextRename || list[len(list)-1].Context != ContextGlobal {
		t.Errorf("Expected context bindings before global ones, got %+v", list)
	}
}

func TestDefaultRegistry_EveryActionKnown(t *testing.T) {
	r := NewDefaultRegistry()
	for context, bindings := range r.bindings {
		for key, action := range bindings {
			if !IsKnownAction(action) {
				t.Errorf("%s/%s: unknown action %q", context, key, action)
			}
		}
	}
}
