package policy

import (
	"github.com/redsea-eng/englib/internal/model"
)

// Action enumerates the guarded operations
type Action int

const (
	// ActionDeleteUser removes an account from the store
	ActionDeleteUser Action = iota

	// ActionToggleLock freezes or unfreezes an account
	ActionToggleLock

	// ActionManageContent covers course create/delete and file upload/delete
	ActionManageContent

	// ActionSendMessage posts to a course discussion
	ActionSendMessage

	// ActionDeleteMessage removes a discussion post
	ActionDeleteMessage

	// ActionManageLogos replaces the institutional logos
	ActionManageLogos
)

// DenyReason identifies why a request was refused. The UI maps each reason
// to user-facing text, so the set below is the product's own description of
// its permission model.
type DenyReason int

const (
	ReasonNone DenyReason = iota

	// ReasonProtectedAccount guards the seeded "zero" account
	ReasonProtectedAccount

	// ReasonSelfDelete blocks deleting the account currently in use
	ReasonSelfDelete

	// ReasonAdminDeletesStudentsOnly limits professors to student removal
	ReasonAdminDeletesStudentsOnly

	// ReasonRootTierRequired blocks non-ROOT actors from removing ROOT accounts
	ReasonRootTierRequired

	// ReasonLockRootRequiresRoot blocks non-ROOT actors from freezing ROOT accounts
	ReasonLockRootRequiresRoot

	// ReasonStaffOnly limits content management to ROOT and ADMIN
	ReasonStaffOnly

	// ReasonGuestReadOnly keeps guests out of the discussion forum
	ReasonGuestReadOnly

	// ReasonRootOnly limits logo management to ROOT
	ReasonRootOnly
)

// String returns the reference English wording of a deny reason
func (r DenyReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonProtectedAccount:
		return "the primary administrator account (zero) can never be removed"
	case ReasonSelfDelete:
		return "you cannot delete the account you are currently using"
	case ReasonAdminDeletesStudentsOnly:
		return "as a professor you may remove student accounts only"
	case ReasonRootTierRequired:
		return "only the primary administrator may remove administrator accounts"
	case ReasonLockRootRequiresRoot:
		return "you are not allowed to freeze an administrator account"
	case ReasonStaffOnly:
		return "this action is reserved for the administrator and professors"
	case ReasonGuestReadOnly:
		return "guests cannot take part in the discussion"
	case ReasonRootOnly:
		return "only the primary administrator manages institutional logos"
	default:
		return "action not permitted"
	}
}

// Decision is the outcome of a policy check
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow returns a permitting decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a refusing decision carrying the given reason
func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// CanPerform is the central decision function. For user-targeted actions
// (delete, lock toggle) target identifies the account being acted on; for the
// remaining actions it is ignored.
func CanPerform(actor model.User, action Action, target model.User) Decision {
	switch action {
	case ActionDeleteUser:
		return CanDeleteUser(actor, target)
	case ActionToggleLock:
		return CanToggleLock(actor, target)
	case ActionManageContent:
		return CanManageContent(actor)
	case ActionSendMessage:
		return CanSendMessage(actor)
	case ActionDeleteMessage:
		return CanDeleteMessage(actor)
	case ActionManageLogos:
		return CanManageLogos(actor)
	default:
		return Deny(ReasonNone)
	}
}

// CanDeleteUser decides whether actor may remove target's account
func CanDeleteUser(actor, target model.User) Decision {
	if target.IsProtected() {
		return Deny(ReasonProtectedAccount)
	}
	if target.ID == actor.ID {
		return Deny(ReasonSelfDelete)
	}
	if actor.Role == model.RoleAdmin && target.Role != model.RoleStudent {
		return Deny(ReasonAdminDeletesStudentsOnly)
	}
	if actor.Role != model.RoleRoot && target.Role == model.RoleRoot {
		return Deny(ReasonRootTierRequired)
	}
	return Allow()
}

// CanToggleLock decides whether actor may freeze or unfreeze target's account
func CanToggleLock(actor, target model.User) Decision {
	if target.IsProtected() {
		return Deny(ReasonProtectedAccount)
	}
	if target.Role == model.RoleRoot && actor.Role != model.RoleRoot {
		return Deny(ReasonLockRootRequiresRoot)
	}
	return Allow()
}

// CanManageContent decides whether actor may create or delete courses and
// upload or delete material files
func CanManageContent(actor model.User) Decision {
	if actor.Role.IsStaff() {
		return Allow()
	}
	return Deny(ReasonStaffOnly)
}

// CanSendMessage decides whether actor may post in a course discussion
func CanSendMessage(actor model.User) Decision {
	if actor.Role == model.RoleGuest {
		return Deny(ReasonGuestReadOnly)
	}
	return Allow()
}

// CanDeleteMessage decides whether actor may remove a discussion post
func CanDeleteMessage(actor model.User) Decision {
	if actor.Role.IsStaff() {
		return Allow()
	}
	return Deny(ReasonStaffOnly)
}

// CanManageLogos decides whether actor may replace the institutional logos
func CanManageLogos(actor model.User) Decision {
	if actor.Role == model.RoleRoot {
		return Allow()
	}
	return Deny(ReasonRootOnly)
}
