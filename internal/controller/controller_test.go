package controller

import "testing"

func TestStrobeHighAlwaysReturnsA(t *testing.T) {
	c := New()
	c.SetPressed(A)
	c.WriteStrobe(1)
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d while strobed high = %d, want 1", i, got)
		}
	}
}

func TestEightReadsThenOnes(t *testing.T) {
	c := New()
	// A, Select, Down, Right pressed; B, Start, Up, Left released.
	c.SetPressed(A)
	c.SetPressed(Select)
	c.SetPressed(Down)
	c.SetPressed(Right)

	c.WriteStrobe(1)
	c.WriteStrobe(0)

	want := []uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("read %d = %d, want %d", i, got, w)
		}
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d after 8th = %d, want 1", 8+i, got)
		}
	}
}

func TestSetReleasedClearsButton(t *testing.T) {
	c := New()
	c.SetPressed(B)
	c.SetReleased(B)
	c.WriteStrobe(1)
	if got := c.Read(); got != 0 {
		t.Errorf("A bit after releasing B = %d, want 0 (A never pressed)", got)
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.SetPressed(Start)
	c.WriteStrobe(1)
	c.WriteStrobe(0)
	c.Read()
	c.Reset()
	if c.strobe || c.index != 0 || c.pressed[Start] {
		t.Errorf("Reset() left stale state: strobe=%v index=%d pressed[Start]=%v", c.strobe, c.index, c.pressed[Start])
	}
}
