package interrupts

import "testing"

func TestIFReadForcesUpperBitsHigh(t *testing.T) {
	c := NewController()
	c.WriteIF(0x00)
	if got := c.ReadIF(); got&0xE0 != 0xE0 {
		t.Fatalf("IF upper bits = %03b, want all set", got>>5)
	}
}

func TestPriorityOrderLowestBitFirst(t *testing.T) {
	c := NewController()
	c.Enable = 0x1F
	c.Flag = Timer | VBlank // bits 2 and 0

	vector, ok := c.NextVector()
	if !ok {
		t.Fatalf("NextVector returned ok=false, want a pending vector")
	}
	if vector != 0x40 {
		t.Fatalf("vector = %#02x, want VBlank's 0x40 (highest priority)", vector)
	}
	if c.Flag&VBlank != 0 {
		t.Fatalf("VBlank bit still set after servicing")
	}
	if c.Flag&Timer == 0 {
		t.Fatalf("Timer bit cleared, want still pending")
	}
}

func TestNextVectorNoneWhenNothingPending(t *testing.T) {
	c := NewController()
	if _, ok := c.NextVector(); ok {
		t.Fatalf("NextVector returned ok=true with nothing pending")
	}
}

func TestPendingRespectsEnableMask(t *testing.T) {
	c := NewController()
	c.Flag = VBlank
	c.Enable = 0 // disabled
	if c.HasPending() {
		t.Fatalf("HasPending true with IE=0")
	}
}
