package team

import "strings"

// DefaultPointsPerGoal applies to goals scored for teams that are missing
// from the tariff, including legacy or misspelled team identifiers.
const DefaultPointsPerGoal = 1

// Tariff maps a team identifier to the points one goal by that team's
// players is worth.
type Tariff struct {
	exact  map[string]float64
	folded map[string]float64
}

func NewTariff(teams []Team) Tariff {
	t := Tariff{
		exact:  make(map[string]float64, len(teams)),
		folded: make(map[string]float64, len(teams)),
	}
	for _, item := range teams {
		if item.PointsPerGoal < 0 {
			continue
		}
		t.exact[item.ID] = item.PointsPerGoal
		t.folded[foldTeamID(item.ID)] = item.PointsPerGoal
	}

	return t
}

// PointsPerGoal is a total function: an exact match wins, then a
// case-insensitive trimmed match, then the default of 1.
func (t Tariff) PointsPerGoal(teamID string) float64 {
	if value, ok := t.exact[teamID]; ok {
		return value
	}
	if value, ok := t.folded[foldTeamID(teamID)]; ok {
		return value
	}

	return DefaultPointsPerGoal
}

func foldTeamID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
