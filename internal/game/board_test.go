package game

import (
	"testing"
)

func TestBoard_Layout(t *testing.T) {
	b := NewBoard()

	if b.Spaces[0].Kind != SpaceGo {
		t.Errorf("Expected GO at position 0, got %v", b.Spaces[0].Kind)
	}
	if b.Spaces[JailPosition].Kind != SpaceJail {
		t.Errorf("Expected Jail at position 10, got %v", b.Spaces[JailPosition].Kind)
	}
	if b.Spaces[GoToJailPosition].Kind != SpaceGoToJail {
		t.Errorf("Expected Go To Jail at position 30, got %v", b.Spaces[GoToJailPosition].Kind)
	}

	for i, s := range b.Spaces {
		if s.Position != i {
			t.Errorf("Space %q has position %d at index %d", s.Name, s.Position, i)
		}
	}
}

func TestBoard_PropertyData(t *testing.T) {
	b := NewBoard()

	med := b.Space(1)
	if med.Name != "Mediterranean Avenue" || med.Price != 60 || med.Rent[0] != 2 {
		t.Errorf("Unexpected Mediterranean data: %+v", med)
	}

	boardwalk := b.Space(39)
	if boardwalk.Price != 400 || boardwalk.Rent[5] != 2000 || boardwalk.ColorGroup != "dark_blue" {
		t.Errorf("Unexpected Boardwalk data: %+v", boardwalk)
	}

	if !b.Space(5).Purchasable() {
		t.Error("Expected Reading Railroad to be purchasable")
	}
	if b.Space(4).Purchasable() {
		t.Error("Expected Income Tax to not be purchasable")
	}
	if b.Space(4).TaxAmount != 200 || b.Space(38).TaxAmount != 100 {
		t.Error("Unexpected tax amounts")
	}
}

func TestBoard_ColorGroups(t *testing.T) {
	b := NewBoard()

	brown := b.ColorGroup("brown")
	if len(brown) != 2 || brown[0] != 1 || brown[1] != 3 {
		t.Errorf("Expected brown group [1 3], got %v", brown)
	}
	if len(b.ColorGroup("red")) != 3 {
		t.Errorf("Expected 3 red properties, got %v", b.ColorGroup("red"))
	}
	if len(b.Railroads()) != 4 {
		t.Errorf("Expected 4 railroads, got %v", b.Railroads())
	}
	if len(b.Utilities()) != 2 {
		t.Errorf("Expected 2 utilities, got %v", b.Utilities())
	}
}

func TestBoard_NearestSearch(t *testing.T) {
	b := NewBoard()

	// From Chance at 7 the next railroad is Pennsylvania at 15.
	if got := b.NearestRailroad(7); got != 15 {
		t.Errorf("Expected nearest railroad 15, got %d", got)
	}
	// From Chance at 36 the search wraps to Reading at 5.
	if got := b.NearestRailroad(36); got != 5 {
		t.Errorf("Expected nearest railroad 5, got %d", got)
	}
	if got := b.NearestUtility(7); got != 12 {
		t.Errorf("Expected nearest utility 12, got %d", got)
	}
	if got := b.NearestUtility(22); got != 28 {
		t.Errorf("Expected nearest utility 28, got %d", got)
	}
	if got := b.NearestUtility(29); got != 12 {
		t.Errorf("Expected nearest utility 12 after wrap, got %d", got)
	}
}

func TestRentHelpers(t *testing.T) {
	b := NewBoard()
	med := b.Space(1)

	if got := med.PropertyRent(0, false); got != 2 {
		t.Errorf("Expected base rent 2, got %d", got)
	}
	if got := med.PropertyRent(0, true); got != 4 {
		t.Errorf("Expected doubled rent 4, got %d", got)
	}
	if got := med.PropertyRent(3, true); got != 90 {
		t.Errorf("Expected 3-house rent 90, got %d", got)
	}
	if got := med.PropertyRent(5, false); got != 250 {
		t.Errorf("Expected hotel rent 250, got %d", got)
	}

	for owned, want := range map[int]int{1: 25, 2: 50, 3: 100, 4: 200} {
		if got := RailroadRent(owned); got != want {
			t.Errorf("RailroadRent(%d) = %d, want %d", owned, got, want)
		}
	}

	if got := UtilityRent(7, 1); got != 28 {
		t.Errorf("Expected utility rent 28, got %d", got)
	}
	if got := UtilityRent(7, 2); got != 70 {
		t.Errorf("Expected utility rent 70, got %d", got)
	}
}
