package roster

// Rules stores roster mutation constraints for one season.
type Rules struct {
	BudgetCap               int64
	MaxSquadSize            int
	PostDeadlineTransferCap int
}

func DefaultRules() Rules {
	return Rules{
		BudgetCap:               50000,
		MaxSquadSize:            11,
		PostDeadlineTransferCap: 3,
	}
}
