package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Timsl1401/kosc-spitsenspel/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the starter dataset into an empty database. A
// database that already has teams is left untouched, so restarting the
// service never duplicates or resets club data.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count teams for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		if err := seedExec(ctx, tx, `
INSERT INTO teams (id, name, points_per_goal, active)
VALUES (:id, :name, :points_per_goal, :active)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              t.ID,
			"name":            t.Name,
			"points_per_goal": t.PointsPerGoal,
			"active":          t.Active,
		}); err != nil {
			return crerr.Wrapf(err, "seed team %s", t.ID)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := seedExec(ctx, tx, `
INSERT INTO players (id, name, team_id, position, price, birth_date)
VALUES (:id, :name, :team_id, :position, :price, :birth_date)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         p.ID,
			"name":       p.Name,
			"team_id":    p.TeamID,
			"position":   string(p.Position),
			"price":      p.Price,
			"birth_date": p.BirthDate,
		}); err != nil {
			return crerr.Wrapf(err, "seed player %s", p.ID)
		}
	}

	for _, u := range memory.SeedUsers() {
		if err := seedExec(ctx, tx, `
INSERT INTO users (id, name, registered_at)
VALUES (:id, :name, :registered_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":            u.ID,
			"name":          u.Name,
			"registered_at": u.RegisteredAt,
		}); err != nil {
			return crerr.Wrapf(err, "seed user %s", u.ID)
		}
	}

	for _, m := range memory.SeedMatches() {
		if err := seedExec(ctx, tx, `
INSERT INTO matches (id, team_id, opponent, played_at, home, score, comment, competitive)
VALUES (:id, :team_id, :opponent, :played_at, :home, :score, :comment, :competitive)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":          m.ID,
			"team_id":     m.TeamID,
			"opponent":    m.Opponent,
			"played_at":   m.PlayedAt,
			"home":        m.Home,
			"score":       m.Score,
			"comment":     m.Comment,
			"competitive": m.Competitive,
		}); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}
	}

	for _, g := range memory.SeedGoals() {
		if err := seedExec(ctx, tx, `
INSERT INTO goals (id, player_id, match_id, scored_at)
VALUES (:id, :player_id, :match_id, :scored_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        g.ID,
			"player_id": g.PlayerID,
			"match_id":  g.MatchID,
			"scored_at": g.ScoredAt,
		}); err != nil {
			return crerr.Wrapf(err, "seed goal %s", g.ID)
		}
	}

	for _, p := range memory.SeedPeriods() {
		if err := seedExec(ctx, tx, `
INSERT INTO periods (id, name, starts_at, ends_at)
VALUES (:id, :name, :starts_at, :ends_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        p.ID,
			"name":      p.Name,
			"starts_at": p.StartsAt,
			"ends_at":   p.EndsAt,
		}); err != nil {
			return crerr.Wrapf(err, "seed period %s", p.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}

	return nil
}

func seedExec(ctx context.Context, tx *sqlx.Tx, query string, args map[string]any) error {
	sqlQuery, sqlArgs, err := sqlx.Named(query, args)
	if err != nil {
		return crerr.Wrap(err, "bind seed query")
	}
	sqlQuery = tx.Rebind(sqlQuery)

	if _, err := tx.ExecContext(ctx, sqlQuery, sqlArgs...); err != nil {
		return err
	}

	return nil
}
