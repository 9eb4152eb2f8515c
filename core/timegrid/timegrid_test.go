package timegrid

import "testing"

func TestClock(t *testing.T) {
	cases := []struct {
		slot int
		want string
	}{
		{0, "08:00"},
		{1, "08:30"},
		{2, "09:00"},
		{3, "09:30"},
		{16, "16:00"},
		{23, "19:30"},
	}
	for _, c := range cases {
		if got := Clock(c.slot); got != c.want {
			t.Fatalf("slot %d: want %s got %s", c.slot, c.want, got)
		}
	}
}

func TestClockNoBoundsCheck(t *testing.T) {
	// indices past the configured day still format rather than fail
	if got := Clock(48); got != "32:00" {
		t.Fatalf("slot 48: got %s", got)
	}
}
