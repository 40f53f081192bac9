package views

import "testing"

func TestPaginator_ScrollsMinimally(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(10)

	for i := 0; i < 4; i++ {
		p.CursorDown()
	}
	start, end := p.VisibleRange()
	if p.Cursor() != 4 || start != 2 || end != 5 {
		t.Errorf("cursor %d window [%d,%d), want 4 [2,5)", p.Cursor(), start, end)
	}

	p.CursorUp()
	p.CursorUp()
	if start, _ := p.VisibleRange(); start != 2 {
		t.Errorf("moving inside the window scrolled to %d", start)
	}
	p.CursorUp()
	if start, _ := p.VisibleRange(); start != 1 {
		t.Errorf("window start = %d, want 1", start)
	}
}

func TestPaginator_Bounds(t *testing.T) {
	p := NewPaginator(4)
	p.SetTotal(6)

	if p.CursorUp() {
		t.Error("cursor moved above the first item")
	}
	p.PageDown()
	p.PageDown()
	if p.Cursor() != 5 {
		t.Errorf("page down clamps to last item, got %d", p.Cursor())
	}
	if p.CursorDown() {
		t.Error("cursor moved past the last item")
	}

	p.SetTotal(2)
	start, end := p.VisibleRange()
	if p.Cursor() != 1 || start != 0 || end != 2 {
		t.Errorf("after shrink cursor %d window [%d,%d)", p.Cursor(), start, end)
	}
}

func TestPaginator_ResizeKeepsCursorVisible(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(20)
	p.SetCursor(9)

	p.SetPageSize(3)
	start, end := p.VisibleRange()
	if p.Cursor() < start || p.Cursor() >= end {
		t.Errorf("cursor %d outside [%d,%d)", p.Cursor(), start, end)
	}
}

func TestPaginator_Empty(t *testing.T) {
	p := NewPaginator(0)
	p.SetTotal(0)
	start, end := p.VisibleRange()
	if p.Cursor() != 0 || start != 0 || end != 0 {
		t.Errorf("empty list: cursor %d window [%d,%d)", p.Cursor(), start, end)
	}
}
