package api

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			// datetime.isoformat() as the store writes it: no zone.
			name:  "naive with microseconds",
			input: "2023-02-05T21:21:13.925490",
			want:  time.Date(2023, 2, 5, 21, 21, 13, 925490000, time.UTC),
		},
		{
			name:  "naive without fraction",
			input: "2023-02-05T21:21:13",
			want:  time.Date(2023, 2, 5, 21, 21, 13, 0, time.UTC),
		},
		{
			name:  "zoned RFC3339",
			input: "2023-02-05T21:21:13Z",
			want:  time.Date(2023, 2, 5, 21, 21, 13, 0, time.UTC),
		},
		{
			name:  "empty",
			input: "",
			want:  time.Time{},
		},
		{
			name:  "garbage",
			input: "yesterday-ish",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaxPasteSize(t *testing.T) {
	t.Parallel()
	if MaxPasteSize != 409600 {
		t.Errorf("MaxPasteSize = %d, want 409600", MaxPasteSize)
	}
}
