package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// ChargeRequest is the payload for creating or adjusting a charge.
// Manual entries use the manually-adjusted policy.
type ChargeRequest struct {
	UserID         uint64 `json:"user_id"`
	EquipmentID    uint   `json:"equipment_id"`
	Amount         string `json:"amount"`
	ChargePolicyID int    `json:"charge_policy_id"`
	ChargeRate     string `json:"charge_rate"`
	ChargedTime    int    `json:"charged_time"`
}

// ChargeService manages the charge ledger. Automatic charge computation
// on deactivation happens in the database; this service covers manual
// entries, corrections, and reads.
type ChargeService struct {
	charges   *stores.ChargeStore
	users     *stores.UserStore
	equipment *stores.EquipmentStore
}

// NewChargeService creates a charge service.
func NewChargeService(db *gorm.DB) *ChargeService {
	return &ChargeService{
		charges:   stores.NewChargeStore(db),
		users:     stores.NewUserStore(db),
		equipment: stores.NewEquipmentStore(db),
	}
}

func (s *ChargeService) validateChargeRequest(req ChargeRequest) error {
	if req.UserID == 0 {
		return errMissingField("user_id")
	}

	if req.EquipmentID == 0 {
		return errMissingField("equipment_id")
	}

	if req.Amount == "" {
		return errMissingField("amount")
	}

	if !chargeRatePattern.MatchString(req.Amount) {
		return errInvalidField("amount")
	}

	if !models.ValidChargePolicy(models.ChargePolicy(req.ChargePolicyID)) {
		return errInvalidField("charge_policy_id")
	}

	if _, err := s.users.Read(req.UserID); err != nil {
		return notFoundOr(err, MsgUserNotFound)
	}

	if _, err := s.equipment.Read(req.EquipmentID); err != nil {
		return notFoundOr(err, MsgEquipmentNotFound)
	}

	return nil
}

// Create records a manual charge.
func (s *ChargeService) Create(sess *session.Session, req ChargeRequest) (*models.Charge, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgChargesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateCharge, MsgChargesNotAuthorized); err != nil {
		return nil, err
	}

	if err := s.validateChargeRequest(req); err != nil {
		return nil, err
	}

	charge := &models.Charge{
		UserID:         req.UserID,
		EquipmentID:    req.EquipmentID,
		Time:           time.Now(),
		Amount:         req.Amount,
		ChargePolicyID: models.ChargePolicy(req.ChargePolicyID),
		ChargeRate:     req.ChargeRate,
		ChargedTime:    req.ChargedTime,
	}
	if err := s.charges.Create(charge); err != nil {
		return nil, err
	}

	return charge, nil
}

// Read returns one charge. Callers without the broad read permission may
// read charges billed to their own account.
func (s *ChargeService) Read(sess *session.Session, id uint64) (*models.Charge, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgChargesNotAuthenticated); err != nil {
		return nil, err
	}

	// Broad readers skip the ownership check entirely; everyone else
	// must hold the own-scope permission, and the ownership comparison
	// happens after the load.
	if !caller.Role.HasPermission(perms.ReadCharge) &&
		!caller.Role.HasPermission(perms.ListOwnCharges) {
		return nil, AuthorizationError{Message: MsgChargesNotAuthorized}
	}

	charge, err := s.charges.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgChargeNotFound)
	}

	if !caller.Role.HasPermission(perms.ReadCharge) && charge.UserID != caller.ID {
		return nil, AuthorizationError{Message: MsgChargesNotAuthorized}
	}

	return charge, nil
}

// Update corrects a charge. Corrected entries switch to the
// manually-adjusted policy so the audit trail shows the intervention.
func (s *ChargeService) Update(sess *session.Session, id uint64, req ChargeRequest) (*models.Charge, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgChargesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyCharge, MsgChargesNotAuthorized); err != nil {
		return nil, err
	}

	if req.Amount == "" {
		return nil, errMissingField("amount")
	}

	if !chargeRatePattern.MatchString(req.Amount) {
		return nil, errInvalidField("amount")
	}

	charge, err := s.charges.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgChargeNotFound)
	}

	charge.Amount = req.Amount
	charge.ChargePolicyID = models.ChargePolicyManuallyAdjusted
	if err := s.charges.Update(charge); err != nil {
		return nil, err
	}

	return charge, nil
}

// ReadAll lists charges matching the filter. Callers holding only the
// own-scope permission see just their own charges.
func (s *ChargeService) ReadAll(sess *session.Session, q query.Charge) ([]models.Charge, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgChargesNotAuthenticated); err != nil {
		return nil, err
	}

	if !caller.Role.HasPermission(perms.ListCharges) {
		if !caller.Role.HasPermission(perms.ListOwnCharges) {
			return nil, AuthorizationError{Message: MsgChargesNotAuthorized}
		}

		own := caller.ID
		q.UserID = &own
	}

	return s.charges.Search(q)
}
