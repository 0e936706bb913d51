package service

import (
	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// ChargePolicyView is the read model for a charge policy. Like card
// types, the set is closed and backed by the enum.
type ChargePolicyView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ChargePolicyService exposes the closed charge policy enumeration.
type ChargePolicyService struct{}

// NewChargePolicyService creates a charge policy service.
func NewChargePolicyService() *ChargePolicyService {
	return &ChargePolicyService{}
}

// Read returns one charge policy by its enum value.
func (s *ChargePolicyService) Read(sess *session.Session, id int) (*ChargePolicyView, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgChargePoliciesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadChargePolicy, MsgChargePoliciesNotAuthorized); err != nil {
		return nil, err
	}

	p := models.ChargePolicy(id)
	if !models.ValidChargePolicy(p) {
		return nil, NotFoundError{Message: MsgChargePolicyNotFound}
	}

	return &ChargePolicyView{ID: id, Name: p.String()}, nil
}

// ReadAll lists all charge policies.
func (s *ChargePolicyService) ReadAll(sess *session.Session) ([]ChargePolicyView, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgChargePoliciesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListChargePolicies, MsgChargePoliciesNotAuthorized); err != nil {
		return nil, err
	}

	policies := []models.ChargePolicy{
		models.ChargePolicyManuallyAdjusted,
		models.ChargePolicyNoCharge,
		models.ChargePolicyPerUse,
		models.ChargePolicyPerMinute,
	}

	views := make([]ChargePolicyView, 0, len(policies))
	for _, p := range policies {
		views = append(views, ChargePolicyView{ID: int(p), Name: p.String()})
	}

	return views, nil
}
