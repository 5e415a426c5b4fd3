package convert

import "testing"

func TestBytesToGiB(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 GiB"},
		{1073741824, "1.00 GiB"},
		{1610612736, "1.50 GiB"},
		{536870912, "0.50 GiB"},
	}

	for _, tc := range tests {
		if got := BytesToGiB(tc.in); got != tc.want {
			t.Fatalf("BytesToGiB(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestBytesToHumanReadable(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
	}

	for _, tc := range tests {
		if got := BytesToHumanReadable(tc.in); got != tc.want {
			t.Fatalf("BytesToHumanReadable(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
