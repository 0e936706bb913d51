package stores

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
)

// BadgeRuleStore persists badge rules, their levels, and their
// equipment-type associations.
type BadgeRuleStore struct {
	db *gorm.DB
}

// NewBadgeRuleStore creates a badge rule store.
func NewBadgeRuleStore(db *gorm.DB) *BadgeRuleStore {
	return &BadgeRuleStore{db: db}
}

// Create inserts the rule, its levels, and its equipment-type rows in
// one transaction.
func (s *BadgeRuleStore) Create(rule *models.BadgeRule) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rule).Error; err != nil {
			return err
		}

		return replaceRuleEquipmentTypes(tx, rule.ID, rule.EquipmentTypeIDs)
	})
}

// Read loads a rule by id with levels (ascending threshold) and
// equipment-type ids.
func (s *BadgeRuleStore) Read(id uint) (*models.BadgeRule, error) {
	var rule models.BadgeRule
	err := s.db.
		Preload("Levels", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("uses_threshold ASC")
		}).
		First(&rule, id).Error
	if err != nil {
		return nil, err
	}

	if err := s.loadEquipmentTypes(&rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

// Update saves the rule, replacing levels and equipment-type rows.
func (s *BadgeRuleStore) Update(rule *models.BadgeRule) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rule).Error; err != nil {
			return err
		}

		if err := tx.Where("rule_id = ?", rule.ID).Delete(&models.BadgeLevel{}).Error; err != nil {
			return err
		}

		for i := range rule.Levels {
			rule.Levels[i].ID = 0
			rule.Levels[i].RuleID = rule.ID

			if err := tx.Create(&rule.Levels[i]).Error; err != nil {
				return err
			}
		}

		return replaceRuleEquipmentTypes(tx, rule.ID, rule.EquipmentTypeIDs)
	})
}

// Delete removes the rule with its levels and equipment-type rows.
func (s *BadgeRuleStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rule_id = ?", id).Delete(&models.BadgeLevel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("rule_id = ?", id).Delete(&models.BadgeRuleEquipmentType{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.BadgeRule{}, id).Error
	})
}

// Search lists all rules with levels and equipment-type ids.
func (s *BadgeRuleStore) Search() ([]models.BadgeRule, error) {
	var rules []models.BadgeRule
	err := s.db.
		Preload("Levels", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("uses_threshold ASC")
		}).
		Order("id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for i := range rules {
		if err := s.loadEquipmentTypes(&rules[i]); err != nil {
			return nil, err
		}
	}

	return rules, nil
}

func (s *BadgeRuleStore) loadEquipmentTypes(rule *models.BadgeRule) error {
	return s.db.Model(&models.BadgeRuleEquipmentType{}).
		Where("rule_id = ?", rule.ID).
		Pluck("equipment_type_id", &rule.EquipmentTypeIDs).Error
}

func replaceRuleEquipmentTypes(tx *gorm.DB, ruleID uint, equipmentTypeIDs []uint) error {
	if err := tx.Where("rule_id = ?", ruleID).Delete(&models.BadgeRuleEquipmentType{}).Error; err != nil {
		return err
	}

	for _, id := range equipmentTypeIDs {
		row := models.BadgeRuleEquipmentType{RuleID: ruleID, EquipmentTypeID: id}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
