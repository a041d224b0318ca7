package models

import (
	"errors"
	"testing"
	"time"
)

func TestComputeDuration(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		want    int64
		wantErr bool
	}{
		{"one hour", base, base.Add(time.Hour), 3600, false},
		{"ninety seconds", base, base.Add(90 * time.Second), 90, false},
		{"floors sub-second remainder", base, base.Add(90*time.Second + 700*time.Millisecond), 90, false},
		{"one second", base, base.Add(time.Second), 1, false},
		{"end equals start", base, base, 0, true},
		{"end before start", base, base.Add(-time.Minute), 0, true},
		{"sub-second interval floors to zero", base, base.Add(400 * time.Millisecond), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDuration(tt.start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInterval) {
					t.Fatalf("expected ErrInvalidInterval, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}
