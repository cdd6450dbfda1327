package tui

import (
	"testing"
	"time"
)

func TestHistory_MergesCloseEdits(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHistory(10, time.Second)

	h.Record("", t0)
	h.Record("a", t0.Add(100*time.Millisecond))
	h.Record("ab", t0.Add(2*time.Second))

	got, ok := h.Undo("abc")
	AssertModelField(t, "first undo", got, "ab")
	AssertModelField(t, "ok", ok, true)
	got, _ = h.Undo("ab")
	AssertModelField(t, "second undo", got, "")
	AssertModelField(t, "can undo", h.CanUndo(), false)
}

func TestHistory_Limit(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHistory(3, 0)

	for i, v := range []string{"1", "2", "3", "4", "5"} {
		h.Record(v, t0.Add(time.Duration(i)*time.Second))
	}

	var undone []string
	cur := "6"
	for h.CanUndo() {
		cur, _ = h.Undo(cur)
		undone = append(undone, cur)
	}
	if len(undone) != 3 || undone[0] != "5" || undone[2] != "3" {
		t.Errorf("undone = %v, want [5 4 3]", undone)
	}
}

func TestHistory_RecordClearsRedo(t *testing.T) {
	h := NewHistory(10, time.Second)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	h.Record("a", now)
	h.Undo("ab")
	AssertModelField(t, "can redo", h.CanRedo(), true)

	h.Record("a", now)
	AssertModelField(t, "can redo after edit", h.CanRedo(), false)
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory(10, time.Second)
	h.Record("a", time.Now())
	h.Reset()

	if _, ok := h.Undo("b"); ok {
		t.Error("reset history should have nothing to undo")
	}
}
