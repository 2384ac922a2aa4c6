package buildinfo

import "testing"

func TestShortAndFull(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	cases := []struct {
		version, commit, date string
		short, full           string
	}{
		{"dev", "unknown", "unknown", "dev", "dev"},
		{"dev", "abc123", "unknown", "abc123", "abc123"},
		{"v1.0.0", "abc123", "2026-01-02", "v1.0.0", "v1.0.0 (abc123) built 2026-01-02"},
		{"v1.0.0", "unknown", "unknown", "v1.0.0", "v1.0.0"},
	}
	for _, c := range cases {
		Version, Commit, Date = c.version, c.commit, c.date
		if got := Short(); got != c.short {
			t.Fatalf("Short(%q,%q) = %q, want %q", c.version, c.commit, got, c.short)
		}
		if got := Full(); got != c.full {
			t.Fatalf("Full(%q,%q,%q) = %q, want %q", c.version, c.commit, c.date, got, c.full)
		}
	}
}
