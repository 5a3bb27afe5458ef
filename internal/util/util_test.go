package util

import (
	"testing"
	"time"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items int
		size  int
		want  []int
	}{
		{name: "empty input", items: 0, size: 500, want: nil},
		{name: "single partial chunk", items: 3, size: 500, want: []int{3}},
		{name: "exact multiple", items: 1000, size: 500, want: []int{500, 500}},
		{name: "remainder chunk", items: 1201, size: 500, want: []int{500, 500, 201}},
		{name: "invalid size", items: 10, size: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := make([]int, tt.items)
			chunks := Chunk(items, tt.size)

			if len(chunks) != len(tt.want) {
				t.Fatalf("Chunk(%d, %d) returned %d chunks, want %d", tt.items, tt.size, len(chunks), len(tt.want))
			}
			for i, chunk := range chunks {
				if len(chunk) != tt.want[i] {
					t.Fatalf("chunk %d has %d items, want %d", i, len(chunk), tt.want[i])
				}
			}
		})
	}
}

func TestUniqueNonEmpty(t *testing.T) {
	t.Parallel()

	got := UniqueNonEmpty([]string{"tok1", "", " tok2 ", "tok1", "   ", "tok2", "tok3"})
	want := []string{"tok1", "tok2", "tok3"}

	if len(got) != len(want) {
		t.Fatalf("UniqueNonEmpty() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UniqueNonEmpty()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnixMilli(t *testing.T) {
	t.Parallel()

	if got := UnixMilli(nil); got != nil {
		t.Fatalf("UnixMilli(nil) = %v, want nil", *got)
	}

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got := UnixMilli(&ts)
	if got == nil || *got != ts.UnixMilli() {
		t.Fatalf("UnixMilli(%s) = %v, want %d", ts, got, ts.UnixMilli())
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
