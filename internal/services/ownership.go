package services

import "fmt"

// authorizeMutation allows a mutation only when the acting user is the
// resource's recorded author. Callers must already have authenticated the
// actor; a mismatch is Forbidden, not Unauthorized.
func authorizeMutation(authorID, actorID string) error {
	if authorID != actorID {
		return fmt.Errorf("actor %s is not the author: %w", actorID, ErrForbidden)
	}
	return nil
}
