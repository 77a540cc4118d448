package model

// Identity represents a marketplace user account.
// Demo accounts from the seed data may be pre-verified; accounts created
// through registration always start unverified.
type Identity struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
}

// NextIdentityID returns the id for a new identity: one past the highest
// id currently in the roster, or 1 for an empty roster.
func NextIdentityID(identities []Identity) int64 {
	var max int64
	for _, u := range identities {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
