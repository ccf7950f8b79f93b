package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestBadgeEntries(t *testing.T) {
	l := NewLocalization()

	entries := BadgeEntries(l, []int64{2, 3, 7})
	want := []string{"Prime 2 🌟", "Prime 3 🌟", "Prime 7 🌟"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entry %d: expected '%s', got '%s'", i, want[i], entries[i])
		}
	}
}

func TestNewBadgeContent_Empty(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	content := NewBadgeContent(l, nil)
	box, ok := content.(*fyne.Container)
	if !ok {
		t.Fatalf("Expected container for empty state, got %T", content)
	}
	title := box.Objects[0].(*widget.Label)
	if title.Text != l.GetText(KeyNoBadges) {
		t.Errorf("Expected empty state title, got '%s'", title.Text)
	}
}

func TestNewBadgeContent_List(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	content := NewBadgeContent(l, []int64{5, 11})
	list, ok := content.(*widget.List)
	if !ok {
		t.Fatalf("Expected list for badges, got %T", content)
	}
	if n := list.Length(); n != 2 {
		t.Errorf("Expected 2 rows, got %d", n)
	}
}
