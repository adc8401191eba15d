package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StoreValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_STORE", "redis")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_STORE")
	}
}

func TestLoad_GameRuleDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BudgetCap != 50000 {
		t.Fatalf("unexpected BudgetCap: %d", cfg.BudgetCap)
	}
	if cfg.MaxSquadSize != 11 {
		t.Fatalf("unexpected MaxSquadSize: %d", cfg.MaxSquadSize)
	}
	if cfg.PostDeadlineTransferCap != 3 {
		t.Fatalf("unexpected PostDeadlineTransferCap: %d", cfg.PostDeadlineTransferCap)
	}
	if cfg.WeekendTransfersOverride {
		t.Fatalf("expected WeekendTransfersOverride=false by default")
	}
}

func TestLoad_TransferDeadlineFormats(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GAME_TRANSFER_DEADLINE", "2025-09-01")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := time.Date(2025, 9, 1, 23, 59, 59, 0, time.UTC)
	if !cfg.TransferDeadline.Equal(want) {
		t.Fatalf("unexpected TransferDeadline: %v, want %v", cfg.TransferDeadline, want)
	}

	t.Setenv("GAME_TRANSFER_DEADLINE", "not-a-date")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid GAME_TRANSFER_DEADLINE")
	}
}

func TestLoad_BudgetCapValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GAME_BUDGET_CAP", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive GAME_BUDGET_CAP")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}
