package pathops

import "testing"

func rectAt(x0, y0, x1, y1 float64) Rect {
	return NewRect(Pt(x0, y0), Pt(x1, y1))
}

func TestFindBoundsCollisionsBetweenSets(t *testing.T) {
	a := []Rect{rectAt(0, 0, 10, 10), rectAt(100, 100, 110, 110)}
	b := []Rect{rectAt(5, 5, 15, 15), rectAt(200, 200, 210, 210)}

	result := findBoundsCollisions(a, b, 0)
	if len(result) != 2 {
		t.Fatalf("got %d result rows, want 2", len(result))
	}
	if len(result[0]) != 1 || result[0][0] != 0 {
		t.Errorf("a[0] collisions = %v, want [0]", result[0])
	}
	if len(result[1]) != 0 {
		t.Errorf("a[1] collisions = %v, want none", result[1])
	}
}

func TestFindBoundsCollisionsSelfMode(t *testing.T) {
	a := []Rect{rectAt(0, 0, 10, 10), rectAt(5, 5, 15, 15), rectAt(100, 100, 110, 110)}

	result := findBoundsCollisions(a, nil, 0)
	if len(result[0]) != 1 || result[0][0] != 1 {
		t.Errorf("a[0] self collisions = %v, want [1]", result[0])
	}
	if len(result[2]) != 0 {
		t.Errorf("a[2] self collisions = %v, want none", result[2])
	}
}

func TestFindBoundsCollisionsTolerance(t *testing.T) {
	a := []Rect{rectAt(0, 0, 10, 10)}
	b := []Rect{rectAt(10.5, 0, 20, 10)}

	if len(findBoundsCollisions(a, b, 0)[0]) != 0 {
		t.Error("rects 0.5 apart should not collide at zero tolerance")
	}
	if len(findBoundsCollisions(a, b, 1)[0]) != 1 {
		t.Error("rects 0.5 apart should collide once padded by tolerance 1")
	}
}

func TestFindCurveBoundsCollisions(t *testing.T) {
	a := Rectangle(0, 0, 100, 100)
	b := Rectangle(50, 50, 100, 100)

	result := findCurveBoundsCollisions(a, b, GeometricEpsilon*10)
	if len(result) != a.CurveCount() {
		t.Fatalf("got %d rows, want %d", len(result), a.CurveCount())
	}
	anyHit := false
	for _, hits := range result {
		if len(hits) > 0 {
			anyHit = true
		}
	}
	if !anyHit {
		t.Error("overlapping rectangles should have at least one curve bounds collision")
	}
}

func TestFindItemBoundsCollisions(t *testing.T) {
	items := []PathItem{
		Rectangle(0, 0, 10, 10),
		Rectangle(5, 5, 10, 10),
		Rectangle(1000, 1000, 10, 10),
	}
	result := findItemBoundsCollisions(items, 0)
	if len(result[0]) != 1 || result[0][0] != 1 {
		t.Errorf("item 0 collisions = %v, want [1]", result[0])
	}
	if len(result[2]) != 0 {
		t.Errorf("item 2 collisions = %v, want none", result[2])
	}
}
