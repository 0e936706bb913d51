package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// importColumns is the exact field count of a user CSV row: name, email,
// role name.
const importColumns = 3

var validate = validator.New()

// UserRequest is the payload for creating or updating a user.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Comment  string `json:"comment"`
	Password string `json:"password,omitempty"`
	RoleID   uint   `json:"role_id"`
	Active   *bool  `json:"active,omitempty"`
}

// UserService manages user accounts, their equipment-type authorization
// grants, and bulk CSV import.
type UserService struct {
	users          *stores.UserStore
	roles          *stores.RoleStore
	equipmentTypes *stores.EquipmentTypeStore
}

// NewUserService creates a user service.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		users:          stores.NewUserStore(db),
		roles:          stores.NewRoleStore(db),
		equipmentTypes: stores.NewEquipmentTypeStore(db),
	}
}

func (s *UserService) validateUserRequest(req UserRequest) error {
	if req.Name == "" {
		return errMissingField("name")
	}

	if req.Email == "" {
		return errMissingField("email")
	}

	if err := validate.Var(req.Email, "email"); err != nil {
		return errInvalidField("email")
	}

	if req.RoleID == 0 {
		return errMissingField("role_id")
	}

	if _, err := s.roles.Read(req.RoleID); err != nil {
		return notFoundOr(err, MsgRoleNotFound)
	}

	return nil
}

// Create adds a user account. New accounts start active.
func (s *UserService) Create(sess *session.Session, req UserRequest) (*models.User, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateUser, MsgUsersNotAuthorized); err != nil {
		return nil, err
	}

	if err := s.validateUserRequest(req); err != nil {
		return nil, err
	}

	user := &models.User{
		Active:  true,
		Name:    req.Name,
		Email:   req.Email,
		Comment: req.Comment,
		RoleID:  req.RoleID,
	}
	if req.Password != "" {
		user.Password = models.HashPassword(req.Password)
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.users.Read(user.ID)
}

// Read returns one user. A caller without the broad read permission may
// still read their own account.
func (s *UserService) Read(sess *session.Session, id uint64) (*models.User, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorizeOwn(caller, perms.ReadUser, perms.ReadOwnUser, id, MsgUsersNotAuthorized); err != nil {
		return nil, err
	}

	user, err := s.users.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgUserNotFound)
	}

	return user, nil
}

// Update edits a user account. Role reassignment, active toggling, and
// profile fields are the only mutations; accounts are never deleted.
func (s *UserService) Update(sess *session.Session, id uint64, req UserRequest) (*models.User, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyUser, MsgUsersNotAuthorized); err != nil {
		return nil, err
	}

	if err := s.validateUserRequest(req); err != nil {
		return nil, err
	}

	user, err := s.users.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgUserNotFound)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Comment = req.Comment
	user.RoleID = req.RoleID
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Password != "" {
		user.Password = models.HashPassword(req.Password)
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return s.users.Read(id)
}

// ReadAll lists users matching the filter.
func (s *UserService) ReadAll(sess *session.Session, q query.User) ([]models.User, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListUsers, MsgUsersNotAuthorized); err != nil {
		return nil, err
	}

	return s.users.Search(q)
}

// Import bulk-creates users from CSV. The first line is a header and is
// skipped; every following row must have exactly three fields: name,
// email, role name (case-sensitive). All rows are validated before any
// row is persisted, and persistence happens in one transaction, so a bad
// row anywhere means nothing is imported.
func (s *UserService) Import(sess *session.Session, r io.Reader) ([]models.User, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateUser, MsgUsersNotAuthorized); err != nil {
		return nil, err
	}

	roles, err := s.roles.Search()
	if err != nil {
		return nil, err
	}

	rolesByName := make(map[string]uint, len(roles))
	for _, role := range roles {
		rolesByName[role.Name] = role.ID
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = importColumns

	var users []models.User
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, InvalidArgumentError{Message: fmt.Sprintf("line %d: malformed CSV row", line+1)}
		}

		line++
		if line == 1 {
			continue // header
		}

		name, email, roleName := record[0], record[1], record[2]
		if name == "" {
			return nil, InvalidArgumentError{Message: fmt.Sprintf("line %d: name is required", line)}
		}

		if err := validate.Var(email, "required,email"); err != nil {
			return nil, InvalidArgumentError{Message: fmt.Sprintf("line %d: email is invalid", line)}
		}

		roleID, ok := rolesByName[roleName]
		if !ok {
			return nil, InvalidArgumentError{Message: fmt.Sprintf("line %d: unknown role %q", line, roleName)}
		}

		users = append(users, models.User{
			Active: true,
			Name:   name,
			Email:  email,
			RoleID: roleID,
		})
	}

	if err := s.users.CreateAll(users); err != nil {
		return nil, err
	}

	return users, nil
}

// Authorize grants a user an equipment-type authorization, letting them
// activate that type's equipment without the training gate.
func (s *UserService) Authorize(sess *session.Session, userID uint64, equipmentTypeID uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.CreateEquipmentAuthorization, MsgUsersNotAuthorized); err != nil {
		return err
	}

	user, err := s.users.Read(userID)
	if err != nil {
		return notFoundOr(err, MsgUserNotFound)
	}

	if _, err := s.equipmentTypes.Read(equipmentTypeID); err != nil {
		return notFoundOr(err, MsgEquipmentTypeNotFound)
	}

	if user.IsAuthorizedFor(equipmentTypeID) {
		return nil
	}

	return s.users.AddAuthorization(userID, equipmentTypeID)
}

// Deauthorize revokes a user's equipment-type authorization.
func (s *UserService) Deauthorize(sess *session.Session, userID uint64, equipmentTypeID uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteEquipmentAuthorization, MsgUsersNotAuthorized); err != nil {
		return err
	}

	if _, err := s.users.Read(userID); err != nil {
		return notFoundOr(err, MsgUserNotFound)
	}

	return s.users.RemoveAuthorization(userID, equipmentTypeID)
}

// Authorizations lists a user's equipment-type authorization ids. A
// caller without the broad list permission may still list their own.
func (s *UserService) Authorizations(sess *session.Session, userID uint64) ([]uint, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgUsersNotAuthenticated); err != nil {
		return nil, err
	}

	err := authorizeOwn(
		caller,
		perms.ListEquipmentAuthorizations,
		perms.ListOwnEquipmentAuthorizations,
		userID,
		MsgUsersNotAuthorized,
	)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Read(userID)
	if err != nil {
		return nil, notFoundOr(err, MsgUserNotFound)
	}

	return user.Authorizations, nil
}
