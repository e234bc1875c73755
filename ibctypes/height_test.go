package ibctypes

import "testing"

func TestHeightOrdering(t *testing.T) {
	low := NewHeight(1, 10)
	high := NewHeight(1, 11)
	higherRevision := NewHeight(2, 0)

	if !low.LT(high) {
		t.Fatalf("expected %s < %s", low, high)
	}
	if !high.GT(low) {
		t.Fatalf("expected %s > %s", high, low)
	}
	if !high.LT(higherRevision) {
		t.Fatalf("expected %s < %s (revision takes priority)", high, higherRevision)
	}
}

func TestHeightIsZero(t *testing.T) {
	if !ZeroHeight().IsZero() {
		t.Fatalf("ZeroHeight should report IsZero")
	}
	if NewHeight(0, 1).IsZero() {
		t.Fatalf("height with nonzero revision_height should not be zero")
	}
}
