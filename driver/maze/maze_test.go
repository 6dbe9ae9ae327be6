package maze

import "testing"

func TestDirectionOpposite(t *testing.T) {
	if North.opposite() != South {
		t.Fatalf("opposite of North should be South")
	}
	if West.opposite() != East {
		t.Fatalf("opposite of West should be East")
	}
}

func TestFewestStepsOnTrivialMap(t *testing.T) {
	m := map[Point]Tile{
		{0, 0}: Open,
		{1, 0}: Open,
		{2, 0}: OxygenSystem,
	}
	if got := FewestSteps(m, Point{0, 0}); got != 2 {
		t.Fatalf("expected 2 steps, got %d", got)
	}
}

func TestFillTimeFloodsOpenCells(t *testing.T) {
	m := map[Point]Tile{
		{0, 0}: OxygenSystem,
		{1, 0}: Open,
		{2, 0}: Open,
	}
	if got := FillTime(m); got != 2 {
		t.Fatalf("expected fill time of 2, got %d", got)
	}
}
