package views

import "testing"

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}

	for range 4 {
		p.CursorDown()
	}
	if p.Cursor() != 4 || p.CurrentPage() != 2 {
		t.Errorf("expected cursor 4 on page 2, got %d on page %d", p.Cursor(), p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("expected range [3,6), got [%d,%d)", start, end)
	}

	if !p.NextPage() || p.Cursor() != 6 {
		t.Errorf("expected next page to move cursor to 6, got %d", p.Cursor())
	}
	if p.NextPage() {
		t.Error("expected no page after the last one")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("expected range [6,7), got [%d,%d)", start, end)
	}

	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("expected cursor clamped to 1 on page 1, got %d on page %d", p.Cursor(), p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.CursorDown() || p.CursorUp() {
		t.Error("expected an empty paginator to stay at 0")
	}
}

func TestPaginator_SetPageSize(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(30)
	p.SetCursor(25)

	p.SetPageSize(4)
	if start, _ := p.VisibleRange(); start != 24 {
		t.Errorf("expected page to start at 24, got %d", start)
	}

	p.SetPageSize(-3)
	if p.PageSize() != 1 {
		t.Errorf("expected page size floor of 1, got %d", p.PageSize())
	}
}
