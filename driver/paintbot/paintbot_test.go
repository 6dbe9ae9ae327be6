package paintbot

import "testing"

func TestFacingTurnsClockwiseAndCounterClockwise(t *testing.T) {
	if Up.turn(true) != Right {
		t.Fatalf("turning right from Up should yield Right")
	}
	if Up.turn(false) != Left {
		t.Fatalf("turning left from Up should yield Left")
	}
}

func TestPictureEmptyWhenNothingPainted(t *testing.T) {
	if Picture(nil) != "" {
		t.Fatalf("expected empty picture for no painted panels")
	}
}
