package score

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RedeemContext provides context for redemption guards.
type RedeemContext struct {
	Reason       string
	Points       int
	CurrentScore int
}

// ValidateRedemption checks the shape of a redemption request.
// Rules:
// - Reason must be non-empty
// - Points must be a positive integer
func ValidateRedemption(ctx RedeemContext) GuardResult {
	if ctx.Reason == "" {
		return GuardResult{Allowed: false, Reason: "reason is required"}
	}
	if ctx.Points <= 0 {
		return GuardResult{Allowed: false, Reason: "points must be positive"}
	}
	return GuardResult{Allowed: true}
}

// CanRedeem evaluates whether the balance covers the redemption.
// The ledger must not be mutated when this fails.
func CanRedeem(ctx RedeemContext) GuardResult {
	if ctx.Points > ctx.CurrentScore {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("not enough points: have %d, need %d", ctx.CurrentScore, ctx.Points),
		}
	}
	return GuardResult{Allowed: true}
}
