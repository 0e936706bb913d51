package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// EquipmentRequest is the payload for admin creation or editing of
// equipment.
type EquipmentRequest struct {
	Name       string `json:"name"`
	TypeID     uint   `json:"type_id"`
	LocationID uint   `json:"location_id"`
	MACAddress string `json:"mac_address"`
	Timeout    int    `json:"timeout"`
	InService  *bool  `json:"in_service,omitempty"`
}

// EquipmentService manages equipment and implements the card-based
// device protocol: self-registration, activation, deactivation, and
// device-reported status changes. Every protocol step appends to the
// event log.
type EquipmentService struct {
	equipment      *stores.EquipmentStore
	equipmentTypes *stores.EquipmentTypeStore
	locations      *stores.LocationStore
	cards          *stores.CardStore
	users          *stores.UserStore
	events         *stores.LoggedEventStore
}

// NewEquipmentService creates an equipment service.
func NewEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{
		equipment:      stores.NewEquipmentStore(db),
		equipmentTypes: stores.NewEquipmentTypeStore(db),
		locations:      stores.NewLocationStore(db),
		cards:          stores.NewCardStore(db),
		users:          stores.NewUserStore(db),
		events:         stores.NewLoggedEventStore(db),
	}
}

func (s *EquipmentService) validateEquipmentRequest(req EquipmentRequest) (string, error) {
	if req.Name == "" {
		return "", errMissingField("name")
	}

	if req.TypeID == 0 {
		return "", errMissingField("type_id")
	}

	if req.LocationID == 0 {
		return "", errMissingField("location_id")
	}

	if req.MACAddress == "" {
		return "", errMissingField("mac_address")
	}

	mac, ok := models.NormalizeMACAddress(req.MACAddress)
	if !ok {
		return "", errInvalidField("mac_address")
	}

	if _, err := s.equipmentTypes.Read(req.TypeID); err != nil {
		return "", notFoundOr(err, MsgEquipmentTypeNotFound)
	}

	if _, err := s.locations.Read(req.LocationID); err != nil {
		return "", notFoundOr(err, MsgLocationNotFound)
	}

	return mac, nil
}

// macAvailable fails when another in-service equipment row already holds
// the MAC. excludeID skips the row being updated.
func (s *EquipmentService) macAvailable(mac string, excludeID uint) error {
	inService := true
	existing, err := s.equipment.Search(query.Equipment{MACAddress: mac, InService: &inService})
	if err != nil {
		return err
	}

	for i := range existing {
		if existing[i].ID != excludeID {
			return InvalidArgumentError{Message: "mac_address is already in use"}
		}
	}

	return nil
}

// Create adds equipment through the admin interface.
func (s *EquipmentService) Create(sess *session.Session, req EquipmentRequest) (*models.Equipment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateEquipment, MsgEquipmentNotAuthorized); err != nil {
		return nil, err
	}

	mac, err := s.validateEquipmentRequest(req)
	if err != nil {
		return nil, err
	}

	equipment := &models.Equipment{
		Name:       req.Name,
		TypeID:     req.TypeID,
		LocationID: req.LocationID,
		MACAddress: mac,
		Timeout:    req.Timeout,
		InService:  true,
	}
	if req.InService != nil {
		equipment.InService = *req.InService
	}

	if equipment.InService {
		if err := s.macAvailable(mac, 0); err != nil {
			return nil, err
		}
	}

	if err := s.equipment.Create(equipment); err != nil {
		return nil, err
	}

	return s.equipment.Read(equipment.ID)
}

// Read returns one piece of equipment with its type and location.
func (s *EquipmentService) Read(sess *session.Session, id uint) (*models.Equipment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadEquipment, MsgEquipmentNotAuthorized); err != nil {
		return nil, err
	}

	equipment, err := s.equipment.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentNotFound)
	}

	return equipment, nil
}

// Update edits equipment through the admin interface.
func (s *EquipmentService) Update(sess *session.Session, id uint, req EquipmentRequest) (*models.Equipment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyEquipment, MsgEquipmentNotAuthorized); err != nil {
		return nil, err
	}

	mac, err := s.validateEquipmentRequest(req)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipment.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentNotFound)
	}

	equipment.Name = req.Name
	equipment.TypeID = req.TypeID
	equipment.LocationID = req.LocationID
	equipment.MACAddress = mac
	equipment.Timeout = req.Timeout
	if req.InService != nil {
		equipment.InService = *req.InService
	}

	if equipment.InService {
		if err := s.macAvailable(mac, equipment.ID); err != nil {
			return nil, err
		}
	}

	if err := s.equipment.Update(equipment); err != nil {
		return nil, err
	}

	return s.equipment.Read(id)
}

// Delete removes equipment through the admin interface.
func (s *EquipmentService) Delete(sess *session.Session, id uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteEquipment, MsgEquipmentNotAuthorized); err != nil {
		return err
	}

	if _, err := s.equipment.Read(id); err != nil {
		return notFoundOr(err, MsgEquipmentNotFound)
	}

	return s.equipment.Delete(id)
}

// ReadAll lists equipment matching the filter.
func (s *EquipmentService) ReadAll(sess *session.Session, q query.Equipment) ([]models.Equipment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListEquipment, MsgEquipmentNotAuthorized); err != nil {
		return nil, err
	}

	return s.equipment.Search(q)
}

// resolveUserCard loads the card behind a device-presented bearer value
// and the user bound to it. The denial message never distinguishes
// unknown cards, non-user cards, or missing users.
func (s *EquipmentService) resolveUserCard(cardID, denied string) (*models.Card, *models.User, error) {
	serial, err := strconv.ParseUint(cardID, 10, 64)
	if err != nil {
		return nil, nil, AuthenticationError{Message: MsgCardNotAuthenticated}
	}

	card, err := s.cards.Read(serial)
	if err != nil {
		return nil, nil, notFoundOr(err, denied)
	}

	if card.TypeID != models.CardTypeUser || card.UserID == nil {
		return nil, nil, AuthorizationError{Message: denied}
	}

	user, err := s.users.Read(*card.UserID)
	if err != nil {
		return nil, nil, notFoundOr(err, denied)
	}

	return card, user, nil
}

// Register creates equipment on behalf of a device booting for the first
// time. The caller authenticates with a user card whose owner holds the
// equipment creation permission; any other card is denied with the fixed
// registration error. The new equipment is assigned the first equipment
// type and first location on record and goes straight into service.
func (s *EquipmentService) Register(cardID, mac string) (*models.Equipment, error) {
	card, user, err := s.resolveUserCard(cardID, MsgRegistrationNotAuthorized)
	if err != nil {
		if IsNotFound(err) {
			return nil, AuthorizationError{Message: MsgRegistrationNotAuthorized}
		}

		return nil, err
	}

	if !user.Role.HasPermission(perms.CreateEquipment) {
		return nil, AuthorizationError{Message: MsgRegistrationNotAuthorized}
	}

	if mac == "" {
		return nil, errMissingField("mac_address")
	}

	normalized, ok := models.NormalizeMACAddress(mac)
	if !ok {
		return nil, errInvalidField("mac_address")
	}

	if err := s.macAvailable(normalized, 0); err != nil {
		return nil, err
	}

	equipmentType, err := s.equipmentTypes.First()
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentTypeNotFound)
	}

	location, err := s.locations.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, InternalError{Message: MsgNoLocationConfigured}
		}

		return nil, err
	}

	equipment := &models.Equipment{
		Name:       "Portalbox " + normalized,
		TypeID:     equipmentType.ID,
		LocationID: location.ID,
		MACAddress: normalized,
		InService:  true,
	}
	if err := s.equipment.Create(equipment); err != nil {
		return nil, err
	}

	s.logEvent(models.EventStartupComplete, equipment.ID, card.ID)

	return s.equipment.Read(equipment.ID)
}

// Activate starts a session on a device. A user card activates when its
// owner is active and either holds an authorization for the equipment
// type or the type requires no training; a training card activates in
// training mode when it matches the equipment type. Every other
// presentation is rejected and logged.
func (s *EquipmentService) Activate(cardID string, equipmentID uint) (*models.Equipment, error) {
	serial, err := strconv.ParseUint(cardID, 10, 64)
	if err != nil {
		return nil, AuthenticationError{Message: MsgCardNotAuthenticated}
	}

	equipment, err := s.equipment.Read(equipmentID)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentNotFound)
	}

	card, err := s.cards.Read(serial)
	if err != nil {
		s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
		return nil, notFoundOr(err, MsgCardNotFound)
	}

	switch card.TypeID {
	case models.CardTypeUser:
		if card.UserID == nil {
			s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
			return nil, AuthorizationError{Message: MsgEquipmentNotAuthorized}
		}

		user, err := s.users.Read(*card.UserID)
		if err != nil {
			s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
			return nil, notFoundOr(err, MsgUserNotFound)
		}

		if !user.Active {
			s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
			return nil, AuthorizationError{Message: MsgEquipmentNotAuthorized}
		}

		if equipment.Type.RequiresTraining && !user.IsAuthorizedFor(equipment.TypeID) {
			s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
			return nil, AuthorizationError{Message: MsgEquipmentNotAuthorized}
		}

		s.logEvent(models.EventSuccessfulAuthentication, equipmentID, serial)

	case models.CardTypeTraining:
		if card.EquipmentTypeID == nil || *card.EquipmentTypeID != equipment.TypeID {
			s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
			return nil, AuthorizationError{Message: MsgEquipmentNotAuthorized}
		}

		s.logEvent(models.EventTraining, equipmentID, serial)

	default:
		s.logEvent(models.EventUnsuccessfulAuthentication, equipmentID, serial)
		return nil, AuthorizationError{Message: MsgEquipmentNotAuthorized}
	}

	equipment.InUse = true
	if err := s.equipment.Update(equipment); err != nil {
		return nil, err
	}

	return equipment, nil
}

// Deactivate ends a session on a device. Charge computation runs in the
// database on the deauthentication record.
func (s *EquipmentService) Deactivate(cardID string, equipmentID uint) (*models.Equipment, error) {
	serial, err := strconv.ParseUint(cardID, 10, 64)
	if err != nil {
		return nil, AuthenticationError{Message: MsgCardNotAuthenticated}
	}

	equipment, err := s.equipment.Read(equipmentID)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentNotFound)
	}

	equipment.InUse = false
	if err := s.equipment.Update(equipment); err != nil {
		return nil, err
	}

	s.logEvent(models.EventDeauthentication, equipmentID, serial)

	return equipment, nil
}

// ChangeStatus records a device-reported lifecycle transition and the
// device's current IP address.
func (s *EquipmentService) ChangeStatus(
	equipmentID uint,
	eventType models.LoggedEventType,
	ipAddress string,
) (*models.Equipment, error) {
	if eventType != models.EventStartupComplete && eventType != models.EventPlannedShutdown {
		return nil, errInvalidField("type_id")
	}

	equipment, err := s.equipment.Read(equipmentID)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentNotFound)
	}

	if ipAddress != "" {
		equipment.IPAddress = &ipAddress
	}

	if eventType == models.EventPlannedShutdown {
		equipment.InUse = false
	}

	if err := s.equipment.Update(equipment); err != nil {
		return nil, err
	}

	s.logEvent(eventType, equipmentID, 0)

	return equipment, nil
}

// logEvent appends to the event log. Logging failures are reported but
// never fail the device operation; an unlogged activation beats a locked
// out member.
func (s *EquipmentService) logEvent(eventType models.LoggedEventType, equipmentID uint, cardID uint64) {
	event := &models.LoggedEvent{
		Time:        time.Now(),
		TypeID:      eventType,
		EquipmentID: equipmentID,
		CardID:      cardID,
	}
	if err := s.events.Create(event); err != nil {
		log.Error().
			Err(err).
			Uint("equipment_id", equipmentID).
			Int("event_type", int(eventType)).
			Msg("failed to append logged event")
	}
}
