package models

// Redemption is an immutable ledger entry spending points for a reward.
// Redemptions are only ever appended.
type Redemption struct {
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	Points    int    `json:"points"`
	CreatedAt string `json:"createdAt"`
}
