package httpwire

import "testing"

// TestHeaderWindowCoverage checks that every recognized header's first
// byte maps to a contiguous [min,max] window that actually contains it.
// Unrecognized first letters are covered by
// TestHeaderWindowUnrecognizedLetter.
func TestHeaderWindowCoverage(t *testing.T) {
	for id := HeaderID(0); id < headerCount; id++ {
		name := headerTable[id].name
		min, max, ok := headerWindow(name[0])
		if !ok {
			t.Errorf("headerWindow(%q) reported no window for recognized header %q", name[0], name)
			continue
		}
		if id < min || id > max {
			t.Errorf("header %q (id %d) falls outside its own window [%d,%d]", name, id, min, max)
		}
	}
}

func TestHeaderWindowUnrecognizedLetter(t *testing.T) {
	for _, c := range []byte("bdefgjkmnopqstvwxyz") {
		if _, _, ok := headerWindow(c); ok {
			t.Errorf("headerWindow(%q) should report no candidate window", c)
		}
	}
}

func TestHeaderWindowOrdering(t *testing.T) {
	// The table must be grouped by first letter so each window is a
	// contiguous run with no other letter interleaved.
	for id := HeaderID(1); id < headerCount; id++ {
		prevFirst := headerTable[id-1].name[0]
		curFirst := headerTable[id].name[0]
		if prevFirst == curFirst {
			continue
		}
		min, max, ok := headerWindow(curFirst)
		if !ok || min != id {
			t.Errorf("header %q starts a new letter group but window min is %d (ok=%v), want %d",
				headerTable[id].name, min, ok, id)
		}
		_ = max
	}
}
