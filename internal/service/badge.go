package service

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// BadgeLevelRequest is one tier in a badge rule payload.
type BadgeLevelRequest struct {
	Name          string `json:"name"`
	UsesThreshold int    `json:"uses_threshold"`
	Image         string `json:"image"`
}

// BadgeRuleRequest is the payload for creating or updating a badge rule.
type BadgeRuleRequest struct {
	Name             string              `json:"name"`
	EquipmentTypeIDs []uint              `json:"equipment_type_ids"`
	Levels           []BadgeLevelRequest `json:"levels"`
}

// EarnedBadge is the highest badge level a user has reached on one rule.
type EarnedBadge struct {
	RuleID    uint   `json:"rule_id"`
	RuleName  string `json:"rule_name"`
	LevelName string `json:"level_name"`
	Image     string `json:"image"`
	Uses      int64  `json:"uses"`
}

// ImageLister enumerates the available badge image assets.
type ImageLister interface {
	List() ([]string, error)
}

// DirImageLister lists image files from a directory on disk.
type DirImageLister struct {
	Dir string
}

// List returns the image file names in the directory, sorted. Dotfiles
// and subdirectories are skipped.
func (l DirImageLister) List() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		names = append(names, filepath.Base(entry.Name()))
	}

	sort.Strings(names)

	return names, nil
}

// BadgeService manages badge rules and computes earned badges from the
// event log.
type BadgeService struct {
	rules          *stores.BadgeRuleStore
	events         *stores.LoggedEventStore
	users          *stores.UserStore
	equipmentTypes *stores.EquipmentTypeStore
	images         ImageLister
}

// NewBadgeService creates a badge service.
func NewBadgeService(db *gorm.DB, images ImageLister) *BadgeService {
	return &BadgeService{
		rules:          stores.NewBadgeRuleStore(db),
		events:         stores.NewLoggedEventStore(db),
		users:          stores.NewUserStore(db),
		equipmentTypes: stores.NewEquipmentTypeStore(db),
		images:         images,
	}
}

// buildRule validates the rule payload and re-validates the equipment
// type references.
func (s *BadgeService) buildRule(req BadgeRuleRequest) (*models.BadgeRule, error) {
	if req.Name == "" {
		return nil, errMissingField("name")
	}

	if len(req.Levels) == 0 {
		return nil, errMissingField("levels")
	}

	for _, level := range req.Levels {
		if level.Name == "" {
			return nil, errMissingField("levels.name")
		}

		if level.UsesThreshold < 0 {
			return nil, errInvalidField("levels.uses_threshold")
		}
	}

	for _, id := range req.EquipmentTypeIDs {
		if _, err := s.equipmentTypes.Read(id); err != nil {
			return nil, notFoundOr(err, MsgEquipmentTypeNotFound)
		}
	}

	rule := &models.BadgeRule{
		Name:             req.Name,
		EquipmentTypeIDs: req.EquipmentTypeIDs,
	}
	for _, level := range req.Levels {
		rule.Levels = append(rule.Levels, models.BadgeLevel{
			Name:          level.Name,
			UsesThreshold: level.UsesThreshold,
			Image:         level.Image,
		})
	}

	return rule, nil
}

// CreateRule adds a badge rule with its levels.
func (s *BadgeService) CreateRule(sess *session.Session, req BadgeRuleRequest) (*models.BadgeRule, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateBadgeRule, MsgBadgesNotAuthorized); err != nil {
		return nil, err
	}

	rule, err := s.buildRule(req)
	if err != nil {
		return nil, err
	}

	if err := s.rules.Create(rule); err != nil {
		return nil, err
	}

	return s.rules.Read(rule.ID)
}

// ReadRule returns one badge rule with levels and equipment types.
func (s *BadgeService) ReadRule(sess *session.Session, id uint) (*models.BadgeRule, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadBadgeRule, MsgBadgesNotAuthorized); err != nil {
		return nil, err
	}

	rule, err := s.rules.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgBadgeRuleNotFound)
	}

	return rule, nil
}

// UpdateRule replaces a badge rule's name, levels, and equipment types.
func (s *BadgeService) UpdateRule(sess *session.Session, id uint, req BadgeRuleRequest) (*models.BadgeRule, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyBadgeRule, MsgBadgesNotAuthorized); err != nil {
		return nil, err
	}

	rule, err := s.buildRule(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.rules.Read(id); err != nil {
		return nil, notFoundOr(err, MsgBadgeRuleNotFound)
	}

	rule.ID = id
	if err := s.rules.Update(rule); err != nil {
		return nil, err
	}

	return s.rules.Read(id)
}

// DeleteRule removes a badge rule.
func (s *BadgeService) DeleteRule(sess *session.Session, id uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteBadgeRule, MsgBadgesNotAuthorized); err != nil {
		return err
	}

	if _, err := s.rules.Read(id); err != nil {
		return notFoundOr(err, MsgBadgeRuleNotFound)
	}

	return s.rules.Delete(id)
}

// ReadAllRules lists all badge rules.
func (s *BadgeService) ReadAllRules(sess *session.Session) ([]models.BadgeRule, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListBadgeRules, MsgBadgesNotAuthorized); err != nil {
		return nil, err
	}

	return s.rules.Search()
}

// BadgesForUser computes the badges a user has earned. For each rule,
// the user's successful authentications across the rule's equipment
// types are summed and the levels are scanned in ascending threshold
// order; the last level whose threshold the sum reaches wins. A sum
// below the lowest threshold earns nothing for that rule.
func (s *BadgeService) BadgesForUser(sess *session.Session, userID uint64) ([]EarnedBadge, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return nil, err
	}

	err := authorizeOwn(caller, perms.ReadUser, perms.ListOwnBadges, userID, MsgBadgesNotAuthorized)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.Read(userID); err != nil {
		return nil, notFoundOr(err, MsgUserNotFound)
	}

	rules, err := s.rules.Search()
	if err != nil {
		return nil, err
	}

	var earned []EarnedBadge
	for _, rule := range rules {
		uses, err := s.events.CountUses(userID, rule.EquipmentTypeIDs)
		if err != nil {
			return nil, err
		}

		var qualifying *models.BadgeLevel
		for i := range rule.Levels {
			if uses >= int64(rule.Levels[i].UsesThreshold) {
				qualifying = &rule.Levels[i]
			}
		}

		if qualifying == nil {
			continue
		}

		earned = append(earned, EarnedBadge{
			RuleID:    rule.ID,
			RuleName:  rule.Name,
			LevelName: qualifying.Name,
			Image:     qualifying.Image,
			Uses:      uses,
		})
	}

	return earned, nil
}

// ListImages returns the available badge image asset names.
func (s *BadgeService) ListImages(sess *session.Session) ([]string, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgBadgesNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListBadgeImages, MsgBadgesNotAuthorized); err != nil {
		return nil, err
	}

	return s.images.List()
}
