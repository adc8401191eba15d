package team

import "testing"

func TestTariffPointsPerGoal(t *testing.T) {
	tariff := NewTariff([]Team{
		{ID: "KOSC1", Name: "KOSC 1", PointsPerGoal: 3, Active: true},
		{ID: "KOSC2", Name: "KOSC 2", PointsPerGoal: 2.5, Active: true},
		{ID: "KOSC3", Name: "KOSC 3", PointsPerGoal: 2, Active: true},
		{ID: "KOSC4", Name: "KOSC 4", PointsPerGoal: 0, Active: true},
	})

	tests := []struct {
		name   string
		teamID string
		want   float64
	}{
		{name: "exact match", teamID: "KOSC1", want: 3},
		{name: "fractional tier", teamID: "KOSC2", want: 2.5},
		{name: "case insensitive", teamID: "kosc3", want: 2},
		{name: "trimmed", teamID: "  KOSC1 ", want: 3},
		{name: "zero multiplier kept", teamID: "KOSC4", want: 0},
		{name: "unknown falls back to default", teamID: "koscX", want: 1},
		{name: "empty falls back to default", teamID: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tariff.PointsPerGoal(tt.teamID); got != tt.want {
				t.Fatalf("PointsPerGoal(%q) = %v, want %v", tt.teamID, got, tt.want)
			}
		})
	}
}

func TestTariffEmpty(t *testing.T) {
	tariff := NewTariff(nil)
	if got := tariff.PointsPerGoal("KOSC1"); got != DefaultPointsPerGoal {
		t.Fatalf("expected default %v, got %v", float64(DefaultPointsPerGoal), got)
	}
}
