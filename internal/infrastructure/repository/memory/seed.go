package memory

import (
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/goal"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/match"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/period"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/player"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/team"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/useraccount"
)

const (
	TeamIDFirst  = "KOSC1"
	TeamIDSecond = "KOSC2"
	TeamIDThird  = "KOSC3"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDFirst, Name: "KOSC 1", PointsPerGoal: 3, Active: true},
		{ID: TeamIDSecond, Name: "KOSC 2", PointsPerGoal: 2.5, Active: true},
		{ID: TeamIDThird, Name: "KOSC 3", PointsPerGoal: 2, Active: true},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-001", Name: "Bram Oude Luttikhuis", TeamID: TeamIDFirst, Position: player.PositionForward, Price: 12000},
		{ID: "pl-002", Name: "Sander Velthuis", TeamID: TeamIDFirst, Position: player.PositionForward, Price: 11000},
		{ID: "pl-003", Name: "Niek ter Brake", TeamID: TeamIDFirst, Position: player.PositionMidfielder, Price: 9500},
		{ID: "pl-004", Name: "Thijs Groothuis", TeamID: TeamIDSecond, Position: player.PositionForward, Price: 8000},
		{ID: "pl-005", Name: "Luuk Hampsink", TeamID: TeamIDSecond, Position: player.PositionMidfielder, Price: 7000},
		{ID: "pl-006", Name: "Rick Bonke", TeamID: TeamIDSecond, Position: player.PositionDefender, Price: 5500},
		{ID: "pl-007", Name: "Jorn Steghuis", TeamID: TeamIDThird, Position: player.PositionForward, Price: 5000},
		{ID: "pl-008", Name: "Mart Eidhof", TeamID: TeamIDThird, Position: player.PositionMidfielder, Price: 4500},
		{ID: "pl-009", Name: "Daan Koop", TeamID: TeamIDThird, Position: player.PositionDefender, Price: 4000},
		{ID: "pl-010", Name: "Wout Scholten", TeamID: TeamIDFirst, Position: player.PositionDefender, Price: 6500},
	}
}

func SeedUsers() []useraccount.User {
	return []useraccount.User{
		{ID: "usr-ans", Name: "Ans Wigger", RegisteredAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "usr-ben", Name: "Ben Kamphuis", RegisteredAt: time.Date(2025, 8, 3, 14, 30, 0, 0, time.UTC)},
		{ID: "usr-cor", Name: "Cor Nijhuis", RegisteredAt: time.Date(2025, 8, 10, 20, 15, 0, 0, time.UTC)},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:          "mt-001",
			TeamID:      TeamIDFirst,
			Opponent:    "De Lutte 1",
			PlayedAt:    time.Date(2025, 9, 7, 14, 0, 0, 0, time.UTC),
			Home:        true,
			Score:       "3-1",
			Competitive: true,
		},
		{
			ID:          "mt-002",
			TeamID:      TeamIDSecond,
			Opponent:    "Rossum 2",
			PlayedAt:    time.Date(2025, 9, 7, 11, 0, 0, 0, time.UTC),
			Home:        false,
			Score:       "2-2",
			Competitive: true,
		},
		{
			ID:          "mt-003",
			TeamID:      TeamIDThird,
			Opponent:    "Oldenzaal 4",
			PlayedAt:    time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC),
			Home:        true,
			Score:       "4-0",
			Competitive: true,
		},
		{
			ID:          "mt-004",
			TeamID:      TeamIDFirst,
			Opponent:    "Denekamp 1",
			PlayedAt:    time.Date(2025, 8, 24, 14, 0, 0, 0, time.UTC),
			Home:        true,
			Score:       "1-1",
			Comment:     "oefenwedstrijd",
			Competitive: false,
		},
	}
}

func SeedGoals() []goal.Goal {
	return []goal.Goal{
		{ID: "gl-001", PlayerID: "pl-001", MatchID: "mt-001", ScoredAt: time.Date(2025, 9, 7, 14, 20, 0, 0, time.UTC)},
		{ID: "gl-002", PlayerID: "pl-001", MatchID: "mt-001", ScoredAt: time.Date(2025, 9, 7, 15, 5, 0, 0, time.UTC)},
		{ID: "gl-003", PlayerID: "pl-002", MatchID: "mt-001", ScoredAt: time.Date(2025, 9, 7, 15, 30, 0, 0, time.UTC)},
		{ID: "gl-004", PlayerID: "pl-004", MatchID: "mt-002", ScoredAt: time.Date(2025, 9, 7, 11, 40, 0, 0, time.UTC)},
		{ID: "gl-005", PlayerID: "pl-007", MatchID: "mt-003", ScoredAt: time.Date(2025, 9, 14, 10, 25, 0, 0, time.UTC)},
		{ID: "gl-006", PlayerID: "pl-002", MatchID: "mt-004", ScoredAt: time.Date(2025, 8, 24, 14, 50, 0, 0, time.UTC)},
	}
}

func SeedPeriods() []period.Period {
	return []period.Period{
		{
			ID:       "periode-1",
			Name:     "Periode 1",
			StartsAt: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 11, 30, 23, 59, 59, 0, time.UTC),
		},
		{
			ID:       "periode-2",
			Name:     "Periode 2",
			StartsAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			ID:       "periode-3",
			Name:     "Periode 3",
			StartsAt: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC),
		},
	}
}
