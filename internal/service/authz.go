package service

import "github.com/Norbu-d/SS2025-WEB-Final-project/internal/apperrors"

// Rule selects which ownership predicate applies to a mutation.
type Rule int

const (
	// SoleOwner allows only the resource owner. Used for post deletion and
	// profile mutation.
	SoleOwner Rule = iota + 1
	// OwnerOrParentOwner allows the resource owner or the owner of its
	// parent. Used for comment deletion: the comment author or the post
	// author may remove a comment.
	OwnerOrParentOwner
)

// Authorize decides whether the principal may act on a resource with the
// given owner (and, for OwnerOrParentOwner, parent owner). It is pure and
// runs strictly after authentication and resource loading have succeeded,
// so a denial is always 403, never 401 or 404.
func Authorize(principal *Principal, ownerID, parentOwnerID int64, rule Rule) error {
	if principal == nil {
		return apperrors.New(apperrors.KindUnauthenticated, "authentication required")
	}

	switch rule {
	case SoleOwner:
		if principal.SubjectID == ownerID {
			return nil
		}
	case OwnerOrParentOwner:
		if principal.SubjectID == ownerID || principal.SubjectID == parentOwnerID {
			return nil
		}
	}

	return apperrors.New(apperrors.KindForbidden, "not allowed to modify this resource")
}
