// Package service contains the application's core business logic.
package service

// Authorize decides whether the acting user may mutate a record owned by
// ownerID. The actor is allowed when they are the owner or one of
// extraOwners; comment deletion passes the post owner as an extra owner so a
// post author can moderate their own thread. Pure predicate, no side
// effects; callers translate a denial into their own Forbidden condition.
func Authorize(actingUserID, ownerID uint, extraOwners ...uint) bool {
	if actingUserID == ownerID {
		return true
	}
	for _, owner := range extraOwners {
		// Zero is the missing-owner sentinel, never a real user.
		if owner != 0 && actingUserID == owner {
			return true
		}
	}
	return false
}
