package service

import (
	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// CardTypeView is the read model for a card type. The set is closed and
// shared with device firmware, so it is served from the enum rather than
// a table.
type CardTypeView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CardTypeService exposes the closed card type enumeration.
type CardTypeService struct{}

// NewCardTypeService creates a card type service.
func NewCardTypeService() *CardTypeService {
	return &CardTypeService{}
}

// Read returns one card type by its enum value.
func (s *CardTypeService) Read(sess *session.Session, id int) (*CardTypeView, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgCardTypesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListCardTypes, MsgCardTypesNotAuthorized); err != nil {
		return nil, err
	}

	t := models.CardType(id)
	if !models.ValidCardType(t) {
		return nil, NotFoundError{Message: MsgCardTypeNotFound}
	}

	return &CardTypeView{ID: id, Name: t.String()}, nil
}

// ReadAll lists all card types.
func (s *CardTypeService) ReadAll(sess *session.Session) ([]CardTypeView, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgCardTypesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListCardTypes, MsgCardTypesNotAuthorized); err != nil {
		return nil, err
	}

	types := []models.CardType{
		models.CardTypeShutdown,
		models.CardTypeProxy,
		models.CardTypeTraining,
		models.CardTypeUser,
	}

	views := make([]CardTypeView, 0, len(types))
	for _, t := range types {
		views = append(views, CardTypeView{ID: int(t), Name: t.String()})
	}

	return views, nil
}
