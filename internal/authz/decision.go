package authz

import "github.com/myantech/erp-api/models"

// Decision is the outcome of an authorization check. It is either allowed,
// carrying the principal, or denied, carrying only the reason.
type Decision struct {
	principal models.Principal
	reason    error
}

// Allowed returns the principal of an allowed decision. ok is false for a
// denial, in which case the returned principal is the zero value.
func (d Decision) Allowed() (principal models.Principal, ok bool) {
	if d.reason != nil {
		return models.Principal{}, false
	}
	return d.principal, true
}

// Reason returns ErrUnauthenticated or ErrForbidden for a denial and nil
// for an allowed decision.
func (d Decision) Reason() error {
	return d.reason
}

func allow(p models.Principal) Decision {
	return Decision{principal: p}
}

func deny(reason error) Decision {
	return Decision{reason: reason}
}

// Authorize checks principal against the allowed role set.
//
// A nil principal is unauthenticated. A principal whose role is outside
// allowed, including any role not in the known enumeration, is forbidden.
func Authorize(principal *models.Principal, allowed models.RoleSet) Decision {
	if principal == nil {
		return deny(ErrUnauthenticated)
	}
	if !allowed.Contains(principal.Role) {
		return deny(ErrForbidden)
	}
	return allow(*principal)
}
