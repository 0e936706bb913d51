package service

import (
	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
)

// authenticate fails with an AuthenticationError carrying the resource
// message when no identity was resolved for the request.
func authenticate(caller *models.User, message string) error {
	if caller == nil {
		return AuthenticationError{Message: message}
	}

	return nil
}

// authorize is the single authorization decision used by every service:
// the caller's role must hold the required permission.
func authorize(caller *models.User, required perms.Permission, denied string) error {
	if caller.Role.HasPermission(required) {
		return nil
	}

	return AuthorizationError{Message: denied}
}

// authorizeOwn extends authorize with own-scope narrowing: the broad
// permission grants access to any resource of the kind; failing that,
// the own permission grants access only when the resource's owner is
// the caller.
func authorizeOwn(
	caller *models.User,
	required perms.Permission,
	own perms.Permission,
	ownerID uint64,
	denied string,
) error {
	if caller.Role.HasPermission(required) {
		return nil
	}

	if caller.Role.HasPermission(own) && caller.ID == ownerID {
		return nil
	}

	return AuthorizationError{Message: denied}
}
