package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Timsl1401/kosc-spitsenspel/internal/config"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/goal"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/match"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/period"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/player"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/ranking"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/scoring"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/team"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/transferwindow"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/useraccount"
	"github.com/Timsl1401/kosc-spitsenspel/internal/infrastructure/repository/memory"
	"github.com/Timsl1401/kosc-spitsenspel/internal/infrastructure/repository/postgres"
	"github.com/Timsl1401/kosc-spitsenspel/internal/interfaces/httpapi"
	idgen "github.com/Timsl1401/kosc-spitsenspel/internal/platform/id"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
	"github.com/Timsl1401/kosc-spitsenspel/internal/usecase"
)

type repositories struct {
	teams    team.Repository
	players  player.Repository
	users    useraccount.Repository
	matches  match.Repository
	goals    goal.Repository
	periods  period.Repository
	rosters  roster.Repository
	scoring  scoring.Repository
	rankings ranking.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup releases store resources and is safe to call once.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	policy := transferwindow.Policy{
		Deadline:        cfg.TransferDeadline,
		WeekendOverride: cfg.WeekendTransfersOverride,
	}
	rules := roster.Rules{
		BudgetCap:               cfg.BudgetCap,
		MaxSquadSize:            cfg.MaxSquadSize,
		PostDeadlineTransferCap: cfg.PostDeadlineTransferCap,
	}

	transferSvc := usecase.NewTransferService(repos.rosters, repos.players, repos.users, policy, rules, idgen.NewRandomGenerator(), logger)
	scoringSvc := usecase.NewGoalScoringService(repos.goals, repos.players, repos.teams, repos.rosters, repos.scoring, logger, cfg.GoalWorkerCount)
	rankingSvc := usecase.NewRankingService(repos.periods, repos.users, repos.rosters, repos.scoring, repos.rankings, logger)
	teamSvc := usecase.NewTeamService(repos.teams)
	playerSvc := usecase.NewPlayerService(repos.players)

	handler := httpapi.NewHandler(transferSvc, scoringSvc, rankingSvc, teamSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanupErr := cleanup(ctx)
		if cleanupErr != nil {
			logger.Warn("cleanup after failed server build", "error", cleanupErr)
		}
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	noopCleanup := func(context.Context) error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		goalRepo := memory.NewGoalRepository(memory.SeedGoals())
		matchRepo := memory.NewMatchRepository(memory.SeedMatches())

		repos := repositories{
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			users:    memory.NewUserRepository(memory.SeedUsers()),
			matches:  matchRepo,
			goals:    goalRepo,
			periods:  memory.NewPeriodRepository(memory.SeedPeriods()),
			rosters:  memory.NewRosterRepository(nil),
			scoring:  memory.NewScoringRepository(goalRepo, matchRepo),
			rankings: memory.NewRankingRepository(),
		}
		logger.Info("store ready", "store", config.StoreMemory)

		return repos, noopCleanup, nil

	case config.StorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}

		repos := repositories{
			teams:    postgres.NewTeamRepository(db),
			players:  postgres.NewPlayerRepository(db),
			users:    postgres.NewUserRepository(db),
			matches:  postgres.NewMatchRepository(db),
			goals:    postgres.NewGoalRepository(db),
			periods:  postgres.NewPeriodRepository(db),
			rosters:  postgres.NewRosterRepository(db),
			scoring:  postgres.NewScoringRepository(db),
			rankings: postgres.NewRankingRepository(db),
		}
		logger.Info("store ready", "store", config.StorePostgres, "db", dbNameFromURL(cfg.DBURL))

		return repos, func(context.Context) error { return db.Close() }, nil

	default:
		return repositories{}, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
