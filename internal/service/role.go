package service

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// RoleRequest is the payload for creating or updating a role.
// Permissions are integer codes; every value must name a known
// permission or the whole request is rejected with no state change.
type RoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Permissions []int  `json:"permissions"`
}

// RoleService manages roles and their permission sets.
type RoleService struct {
	roles *stores.RoleStore
}

// NewRoleService creates a role service.
func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{roles: stores.NewRoleStore(db)}
}

func validateRoleRequest(req RoleRequest) ([]perms.Permission, error) {
	if req.Name == "" {
		return nil, errMissingField("name")
	}

	permissions := make([]perms.Permission, 0, len(req.Permissions))
	for _, v := range req.Permissions {
		p := perms.Permission(v)
		if !perms.Valid(p) {
			return nil, errInvalidField("permissions")
		}

		permissions = append(permissions, p)
	}

	return permissions, nil
}

// Create adds a role with the given permission set.
func (s *RoleService) Create(sess *session.Session, req RoleRequest) (*models.Role, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgRolesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateRole, MsgRolesNotAuthorized); err != nil {
		return nil, err
	}

	permissions, err := validateRoleRequest(req)
	if err != nil {
		return nil, err
	}

	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: permissions,
	}
	if err := s.roles.Create(role); err != nil {
		return nil, err
	}

	return role, nil
}

// Read returns one role by id.
func (s *RoleService) Read(sess *session.Session, id uint) (*models.Role, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgRolesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadRole, MsgRolesNotAuthorized); err != nil {
		return nil, err
	}

	role, err := s.roles.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgRoleNotFound)
	}

	return role, nil
}

// Update edits a role. System roles are seeded infrastructure and stay
// immutable.
func (s *RoleService) Update(sess *session.Session, id uint, req RoleRequest) (*models.Role, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgRolesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyRole, MsgRolesNotAuthorized); err != nil {
		return nil, err
	}

	permissions, err := validateRoleRequest(req)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgRoleNotFound)
	}

	if role.IsSystem {
		return nil, InvalidArgumentError{Message: "System roles cannot be modified"}
	}

	role.Name = req.Name
	role.Description = req.Description
	role.Permissions = permissions

	if err := s.roles.Update(role); err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role. System roles cannot be deleted.
func (s *RoleService) Delete(sess *session.Session, id uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgRolesNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteRole, MsgRolesNotAuthorized); err != nil {
		return err
	}

	role, err := s.roles.Read(id)
	if err != nil {
		return notFoundOr(err, MsgRoleNotFound)
	}

	if role.IsSystem {
		return InvalidArgumentError{Message: "System roles cannot be deleted"}
	}

	return s.roles.Delete(id)
}

// ReadAll lists all roles.
func (s *RoleService) ReadAll(sess *session.Session) ([]models.Role, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgRolesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListRoles, MsgRolesNotAuthorized); err != nil {
		return nil, err
	}

	return s.roles.Search()
}
