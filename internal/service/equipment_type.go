package service

import (
	"regexp"

	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// chargeRatePattern matches a non-negative decimal amount such as "2" or
// "0.25". Rates are kept as strings to avoid float rounding in billing.
var chargeRatePattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// EquipmentTypeRequest is the payload for creating or updating an
// equipment type. Fields are validated in declared order.
type EquipmentTypeRequest struct {
	Name             string `json:"name"`
	RequiresTraining bool   `json:"requires_training"`
	ChargeRate       string `json:"charge_rate"`
	ChargePolicyID   int    `json:"charge_policy_id"`
	AllowProxy       bool   `json:"allow_proxy"`
}

// EquipmentTypeService manages equipment types.
type EquipmentTypeService struct {
	equipmentTypes *stores.EquipmentTypeStore
}

// NewEquipmentTypeService creates an equipment type service.
func NewEquipmentTypeService(db *gorm.DB) *EquipmentTypeService {
	return &EquipmentTypeService{equipmentTypes: stores.NewEquipmentTypeStore(db)}
}

func validateEquipmentTypeRequest(req EquipmentTypeRequest) error {
	if req.Name == "" {
		return errMissingField("name")
	}

	if req.ChargeRate == "" {
		return errMissingField("charge_rate")
	}

	if !chargeRatePattern.MatchString(req.ChargeRate) {
		return errInvalidField("charge_rate")
	}

	if !models.ValidChargePolicy(models.ChargePolicy(req.ChargePolicyID)) {
		return errInvalidField("charge_policy_id")
	}

	return nil
}

// Create adds an equipment type.
func (s *EquipmentTypeService) Create(sess *session.Session, req EquipmentTypeRequest) (*models.EquipmentType, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentTypesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateEquipmentType, MsgEquipmentTypesNotAuthorized); err != nil {
		return nil, err
	}

	if err := validateEquipmentTypeRequest(req); err != nil {
		return nil, err
	}

	equipmentType := &models.EquipmentType{
		Name:             req.Name,
		RequiresTraining: req.RequiresTraining,
		ChargeRate:       req.ChargeRate,
		ChargePolicyID:   models.ChargePolicy(req.ChargePolicyID),
		AllowProxy:       req.AllowProxy,
	}
	if err := s.equipmentTypes.Create(equipmentType); err != nil {
		return nil, err
	}

	return equipmentType, nil
}

// Read returns one equipment type by id.
func (s *EquipmentTypeService) Read(sess *session.Session, id uint) (*models.EquipmentType, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentTypesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadEquipmentType, MsgEquipmentTypesNotAuthorized); err != nil {
		return nil, err
	}

	equipmentType, err := s.equipmentTypes.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentTypeNotFound)
	}

	return equipmentType, nil
}

// Update edits an equipment type.
func (s *EquipmentTypeService) Update(
	sess *session.Session,
	id uint,
	req EquipmentTypeRequest,
) (*models.EquipmentType, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentTypesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyEquipmentType, MsgEquipmentTypesNotAuthorized); err != nil {
		return nil, err
	}

	if err := validateEquipmentTypeRequest(req); err != nil {
		return nil, err
	}

	equipmentType, err := s.equipmentTypes.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgEquipmentTypeNotFound)
	}

	equipmentType.Name = req.Name
	equipmentType.RequiresTraining = req.RequiresTraining
	equipmentType.ChargeRate = req.ChargeRate
	equipmentType.ChargePolicyID = models.ChargePolicy(req.ChargePolicyID)
	equipmentType.AllowProxy = req.AllowProxy

	if err := s.equipmentTypes.Update(equipmentType); err != nil {
		return nil, err
	}

	return equipmentType, nil
}

// Delete removes an equipment type.
func (s *EquipmentTypeService) Delete(sess *session.Session, id uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentTypesNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteEquipmentType, MsgEquipmentTypesNotAuthorized); err != nil {
		return err
	}

	if _, err := s.equipmentTypes.Read(id); err != nil {
		return notFoundOr(err, MsgEquipmentTypeNotFound)
	}

	return s.equipmentTypes.Delete(id)
}

// ReadAll lists all equipment types.
func (s *EquipmentTypeService) ReadAll(sess *session.Session) ([]models.EquipmentType, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgEquipmentTypesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListEquipmentTypes, MsgEquipmentTypesNotAuthorized); err != nil {
		return nil, err
	}

	return s.equipmentTypes.Search()
}
