package service

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// LocationRequest is the payload for creating or updating a location.
type LocationRequest struct {
	Name string `json:"name"`
}

// LocationService manages locations.
type LocationService struct {
	locations *stores.LocationStore
}

// NewLocationService creates a location service.
func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{locations: stores.NewLocationStore(db)}
}

// Create adds a location.
func (s *LocationService) Create(sess *session.Session, req LocationRequest) (*models.Location, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLocationsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateLocation, MsgLocationsNotAuthorized); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, errMissingField("name")
	}

	location := &models.Location{Name: req.Name}
	if err := s.locations.Create(location); err != nil {
		return nil, err
	}

	return location, nil
}

// Read returns one location by id.
func (s *LocationService) Read(sess *session.Session, id uint) (*models.Location, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLocationsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadLocation, MsgLocationsNotAuthorized); err != nil {
		return nil, err
	}

	location, err := s.locations.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgLocationNotFound)
	}

	return location, nil
}

// Update renames a location.
func (s *LocationService) Update(sess *session.Session, id uint, req LocationRequest) (*models.Location, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLocationsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyLocation, MsgLocationsNotAuthorized); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, errMissingField("name")
	}

	location, err := s.locations.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgLocationNotFound)
	}

	location.Name = req.Name
	if err := s.locations.Update(location); err != nil {
		return nil, err
	}

	return location, nil
}

// Delete removes a location.
func (s *LocationService) Delete(sess *session.Session, id uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLocationsNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteLocation, MsgLocationsNotAuthorized); err != nil {
		return err
	}

	if _, err := s.locations.Read(id); err != nil {
		return notFoundOr(err, MsgLocationNotFound)
	}

	return s.locations.Delete(id)
}

// ReadAll lists all locations.
func (s *LocationService) ReadAll(sess *session.Session) ([]models.Location, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLocationsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListLocations, MsgLocationsNotAuthorized); err != nil {
		return nil, err
	}

	return s.locations.Search()
}
