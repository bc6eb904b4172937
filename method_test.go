package httpwire

import "testing"

// TestMethodLookupBucketing mirrors the teacher's TestMthNameLookup
// (parse_fline_test.go): every recognized method must resolve via the
// hash table and buckets must stay small (the table is sized to keep
// per-method lookup to a short linear scan, not a 6-way one).
func TestMethodLookupBucketing(t *testing.T) {
	var total, max int
	for _, bucket := range methodLookup {
		total += len(bucket)
		if len(bucket) > max {
			max = len(bucket)
		}
	}
	if total != int(methodCount)-1 {
		t.Errorf("methodLookup holds %d entries, want %d", total, methodCount-1)
	}
	if max > 2 {
		t.Errorf("methodLookup bucket too large: %d", max)
	}
}

func TestLookupMethod(t *testing.T) {
	cases := []struct {
		in   string
		want Method
	}{
		{"GET", MethodGet},
		{"POST", MethodPost},
		{"HEAD", MethodHead},
		{"PUT", MethodPut},
		{"DELETE", MethodDelete},
		{"OPTIONS", MethodOptions},
		{"PATCH", MethodUnknown},
		{"CONNECT", MethodUnknown},
		{"get", MethodUnknown}, // method matching is case-sensitive
		{"", MethodUnknown},
	}
	for _, c := range cases {
		if got := lookupMethod([]byte(c.in)); got != c.want {
			t.Errorf("lookupMethod(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMethodName(t *testing.T) {
	if got := MethodGet.Name(); string(got) != "GET" {
		t.Errorf("MethodGet.Name() = %q, want GET", got)
	}
	if got := MethodUnknown.String(); got != "" {
		t.Errorf("MethodUnknown.String() = %q, want empty", got)
	}
}
