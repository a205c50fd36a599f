package primary

import "context"

// ScoreService defines the primary port for the derived score and the
// reward-redemption gate.
type ScoreService interface {
	// CurrentScore derives the point balance from the stored facts.
	CurrentScore(ctx context.Context) (int, error)

	// RedeemPoints appends a ledger entry after checking the balance.
	// Returns ErrValidation for a bad request and
	// ErrInsufficientBalance when points exceed the current score.
	RedeemPoints(ctx context.Context, reason string, points int) error
}
