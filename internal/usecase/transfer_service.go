package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/player"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/roster"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/transferwindow"
	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/useraccount"
	idgen "github.com/Timsl1401/kosc-spitsenspel/internal/platform/id"
	"github.com/Timsl1401/kosc-spitsenspel/internal/platform/logging"
)

// RejectionReason identifies why a buy or sell was refused. Rejections are
// ordinary results, not errors: the caller renders them to the end user.
type RejectionReason string

const (
	RejectionWindowClosed    RejectionReason = "transfersNotAllowed"
	RejectionAlreadyOwned    RejectionReason = "alreadyOwned"
	RejectionSquadFull       RejectionReason = "squadFull"
	RejectionBudgetExceeded  RejectionReason = "insufficientBudget"
	RejectionNoTransfersLeft RejectionReason = "noTransfersRemaining"
	RejectionNotOwned        RejectionReason = "notOwned"
)

// TransferResult reports the outcome of one buy or sell attempt.
type TransferResult struct {
	OK      bool
	Reason  RejectionReason
	Message string
	Entry   roster.Entry
}

func rejected(reason RejectionReason, message string) TransferResult {
	return TransferResult{Reason: reason, Message: message}
}

// TransferService is the roster ledger's mutation surface: the buy/sell
// state machine plus the transfer window policy gating it. All operations
// take now explicitly so the rules stay deterministically testable.
type TransferService struct {
	rosterRepo roster.Repository
	playerRepo player.Repository
	userRepo   useraccount.Repository
	policy     transferwindow.Policy
	rules      roster.Rules
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewTransferService(
	rosterRepo roster.Repository,
	playerRepo player.Repository,
	userRepo useraccount.Repository,
	policy transferwindow.Policy,
	rules roster.Rules,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		rosterRepo: rosterRepo,
		playerRepo: playerRepo,
		userRepo:   userRepo,
		policy:     policy,
		rules:      rules,
		idGen:      idGen,
		logger:     logger,
	}
}

// Buy attempts to add a player to the user's roster at the given price.
// The precondition chain runs inside a per-user transaction, so two
// concurrent buys that would jointly break the squad-size or budget cap
// end up as one success and one rejection.
func (s *TransferService) Buy(ctx context.Context, userID, playerID string, price int64, now time.Time) (TransferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Buy")
	defer span.End()

	userID = strings.TrimSpace(userID)
	playerID = strings.TrimSpace(playerID)
	if userID == "" || playerID == "" {
		return TransferResult{}, fmt.Errorf("%w: user id and player id are required", ErrInvalidInput)
	}
	if price <= 0 {
		return TransferResult{}, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	if now.IsZero() {
		return TransferResult{}, fmt.Errorf("%w: transfer time is required", ErrInvalidInput)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return TransferResult{}, err
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return TransferResult{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return TransferResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if !s.policy.CanTransfer(now) {
		return rejected(RejectionWindowClosed, "transfers are not currently allowed"), nil
	}

	var result TransferResult
	err := s.rosterRepo.InUserTx(ctx, userID, func(ctx context.Context, store roster.TxStore) error {
		open, err := store.ListOpenByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list open roster entries: %w", err)
		}

		for _, entry := range open {
			if entry.PlayerID == playerID {
				result = rejected(RejectionAlreadyOwned, "player is already in your squad")
				return nil
			}
		}

		if len(open) >= s.rules.MaxSquadSize {
			result = rejected(RejectionSquadFull, fmt.Sprintf("squad is full (max %d players)", s.rules.MaxSquadSize))
			return nil
		}

		if spent := roster.TotalValue(open); spent+price > s.rules.BudgetCap {
			shortfall := spent + price - s.rules.BudgetCap
			result = rejected(RejectionBudgetExceeded, fmt.Sprintf("insufficient budget: %d over the cap", shortfall))
			return nil
		}

		postDeadline := s.policy.IsPostDeadline(now)
		if postDeadline {
			used, err := store.CountPostDeadlineBuys(ctx, userID)
			if err != nil {
				return fmt.Errorf("count post-deadline buys: %w", err)
			}
			if used >= s.rules.PostDeadlineTransferCap {
				result = rejected(RejectionNoTransfersLeft, "no transfers remaining after the deadline")
				return nil
			}
		}

		entryID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate roster entry id: %w", err)
		}

		entry := roster.Entry{
			ID:           entryID,
			UserID:       userID,
			PlayerID:     playerID,
			Price:        price,
			BoughtAt:     now,
			PostDeadline: postDeadline,
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := store.Create(ctx, entry); err != nil {
			return fmt.Errorf("create roster entry: %w", err)
		}

		result = TransferResult{OK: true, Entry: entry}
		return nil
	})
	if err != nil {
		return TransferResult{}, err
	}

	if result.OK {
		s.logger.InfoContext(ctx, "player bought",
			"user_id", userID,
			"player_id", playerID,
			"price", price,
			"post_deadline", result.Entry.PostDeadline,
		)
	}

	return result, nil
}

// Sell closes the user's open entry for the player. Selling is gated by the
// transfer window only; budget and squad-size checks do not apply.
func (s *TransferService) Sell(ctx context.Context, userID, playerID string, price int64, now time.Time) (TransferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Sell")
	defer span.End()

	userID = strings.TrimSpace(userID)
	playerID = strings.TrimSpace(playerID)
	if userID == "" || playerID == "" {
		return TransferResult{}, fmt.Errorf("%w: user id and player id are required", ErrInvalidInput)
	}
	if price < 0 {
		return TransferResult{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if now.IsZero() {
		return TransferResult{}, fmt.Errorf("%w: transfer time is required", ErrInvalidInput)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return TransferResult{}, err
	}

	if !s.policy.CanTransfer(now) {
		return rejected(RejectionWindowClosed, "transfers are not currently allowed"), nil
	}

	var result TransferResult
	err := s.rosterRepo.InUserTx(ctx, userID, func(ctx context.Context, store roster.TxStore) error {
		open, err := store.ListOpenByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list open roster entries: %w", err)
		}

		var target *roster.Entry
		for i := range open {
			if open[i].PlayerID == playerID {
				if target != nil {
					return fmt.Errorf("%w: multiple open entries for user=%s player=%s", ErrIntegrity, userID, playerID)
				}
				target = &open[i]
			}
		}
		if target == nil {
			result = rejected(RejectionNotOwned, "player is not in your squad")
			return nil
		}

		if err := store.Close(ctx, target.ID, now, price); err != nil {
			return fmt.Errorf("close roster entry: %w", err)
		}

		closed := *target
		closed.SoldAt = &now
		closed.SoldPrice = &price
		result = TransferResult{OK: true, Entry: closed}
		return nil
	})
	if err != nil {
		return TransferResult{}, err
	}

	if result.OK {
		s.logger.InfoContext(ctx, "player sold",
			"user_id", userID,
			"player_id", playerID,
			"price", price,
		)
	}

	return result, nil
}

// ActiveRoster returns the players the user owned at the given moment.
func (s *TransferService) ActiveRoster(ctx context.Context, userID string, asOf time.Time) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ActiveRoster")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if asOf.IsZero() {
		return nil, fmt.Errorf("%w: as-of time is required", ErrInvalidInput)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByUserAt(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}
	if len(entries) == 0 {
		return []player.Player{}, nil
	}

	playerIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		playerIDs = append(playerIDs, entry.PlayerID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get roster players: %w", err)
	}

	return players, nil
}

// RemainingPostDeadlineTransfers reports how many buys the user still has
// once the deadline has passed. Before the deadline the full cap applies.
func (s *TransferService) RemainingPostDeadlineTransfers(ctx context.Context, userID string, now time.Time) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.RemainingPostDeadlineTransfers")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if !s.policy.IsPostDeadline(now) {
		return s.rules.PostDeadlineTransferCap, nil
	}

	var used int
	err := s.rosterRepo.InUserTx(ctx, userID, func(ctx context.Context, store roster.TxStore) error {
		count, err := store.CountPostDeadlineBuys(ctx, userID)
		if err != nil {
			return fmt.Errorf("count post-deadline buys: %w", err)
		}
		used = count
		return nil
	})
	if err != nil {
		return 0, err
	}

	remaining := s.rules.PostDeadlineTransferCap - used
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

func (s *TransferService) requireUser(ctx context.Context, userID string) error {
	_, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	return nil
}
