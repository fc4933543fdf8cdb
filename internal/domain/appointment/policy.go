package appointment

import "github.com/urbanbarber/api/internal/models"

// Actor is the resolved caller identity for a protected operation.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanAccess is the single authorization predicate applied to every
// per-appointment operation: admins may act on any appointment, everyone
// else only on their own.
func CanAccess(actor Actor, ownerID uint) bool {
	return actor.IsAdmin() || actor.UserID == ownerID
}
