package team

import "fmt"

// Team is one of the club's real squads (KOSC 1, KOSC 2 zaterdag, ...).
type Team struct {
	ID            string
	Name          string
	PointsPerGoal float64
	Active        bool
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.PointsPerGoal < 0 {
		return fmt.Errorf("team points per goal must not be negative")
	}

	return nil
}
