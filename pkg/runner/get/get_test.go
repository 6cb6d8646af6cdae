package get

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "", want: All},
		{in: "all", want: All},
		{in: "done", want: Done},
		{in: "completed", want: Done},
		{in: "remaining", want: Remaining},
		{in: "active", want: Remaining},
		{in: "left", want: Remaining},
		{in: "bogus", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseFilter(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseFilter(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFilter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
