package service

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// CardRequest is the payload for creating or updating a card. ID is the
// physical serial printed on the token. The payload fields are
// variant-specific: training cards take an equipment type, user cards
// take a user, shutdown and proxy cards take neither.
type CardRequest struct {
	ID              uint64  `json:"id"`
	TypeID          int     `json:"type_id"`
	EquipmentTypeID *uint   `json:"equipment_type_id,omitempty"`
	UserID          *uint64 `json:"user_id,omitempty"`
}

// CardService manages RFID/NFC cards.
type CardService struct {
	cards          *stores.CardStore
	users          *stores.UserStore
	equipmentTypes *stores.EquipmentTypeStore
}

// NewCardService creates a card service.
func NewCardService(db *gorm.DB) *CardService {
	return &CardService{
		cards:          stores.NewCardStore(db),
		users:          stores.NewUserStore(db),
		equipmentTypes: stores.NewEquipmentTypeStore(db),
	}
}

// buildCard validates the variant payload and re-validates foreign keys,
// returning the card to persist.
func (s *CardService) buildCard(req CardRequest) (*models.Card, error) {
	if req.ID == 0 {
		return nil, errMissingField("id")
	}

	cardType := models.CardType(req.TypeID)
	if !models.ValidCardType(cardType) {
		return nil, errInvalidField("type_id")
	}

	switch cardType {
	case models.CardTypeTraining:
		if req.EquipmentTypeID == nil {
			return nil, errMissingField("equipment_type_id")
		}

		if req.UserID != nil {
			return nil, errInvalidField("user_id")
		}

		if _, err := s.equipmentTypes.Read(*req.EquipmentTypeID); err != nil {
			return nil, notFoundOr(err, MsgEquipmentTypeNotFound)
		}

		return models.NewTrainingCard(req.ID, *req.EquipmentTypeID), nil

	case models.CardTypeUser:
		if req.UserID == nil {
			return nil, errMissingField("user_id")
		}

		if req.EquipmentTypeID != nil {
			return nil, errInvalidField("equipment_type_id")
		}

		if _, err := s.users.Read(*req.UserID); err != nil {
			return nil, notFoundOr(err, MsgUserNotFound)
		}

		return models.NewUserCard(req.ID, *req.UserID), nil
	}

	// Shutdown and proxy cards carry no payload.
	if req.EquipmentTypeID != nil {
		return nil, errInvalidField("equipment_type_id")
	}

	if req.UserID != nil {
		return nil, errInvalidField("user_id")
	}

	if cardType == models.CardTypeShutdown {
		return models.NewShutdownCard(req.ID), nil
	}

	return models.NewProxyCard(req.ID), nil
}

// Create registers a card under its physical serial.
func (s *CardService) Create(sess *session.Session, req CardRequest) (*models.Card, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgCardsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateCard, MsgCardsNotAuthorized); err != nil {
		return nil, err
	}

	card, err := s.buildCard(req)
	if err != nil {
		return nil, err
	}

	if err := s.cards.Create(card); err != nil {
		return nil, err
	}

	return card, nil
}

// Read returns one card by serial.
func (s *CardService) Read(sess *session.Session, id uint64) (*models.Card, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgCardsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadCard, MsgCardsNotAuthorized); err != nil {
		return nil, err
	}

	card, err := s.cards.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgCardNotFound)
	}

	return card, nil
}

// Update changes a card's type or payload. The serial is immutable; the
// request id must match the path id.
func (s *CardService) Update(sess *session.Session, id uint64, req CardRequest) (*models.Card, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgCardsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyCard, MsgCardsNotAuthorized); err != nil {
		return nil, err
	}

	if req.ID != 0 && req.ID != id {
		return nil, errInvalidField("id")
	}

	req.ID = id
	card, err := s.buildCard(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.cards.Read(id); err != nil {
		return nil, notFoundOr(err, MsgCardNotFound)
	}

	if err := s.cards.Update(card); err != nil {
		return nil, err
	}

	return card, nil
}

// ReadAll lists cards matching the filter. Callers holding only the
// own-scope list permission see just the cards bound to their own user
// id, regardless of the requested filter.
func (s *CardService) ReadAll(sess *session.Session, q query.Card) ([]models.Card, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgCardsNotAuthenticated); err != nil {
		return nil, err
	}

	if !caller.Role.HasPermission(perms.ListCards) {
		if !caller.Role.HasPermission(perms.ListOwnCards) {
			return nil, AuthorizationError{Message: MsgCardsNotAuthorized}
		}

		own := caller.ID
		q.UserID = &own
	}

	return s.cards.Search(q)
}
