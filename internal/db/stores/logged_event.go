package stores

import (
	"time"

	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
)

// LoggedEventStore persists the append-only event log. There are no
// update or delete operations on purpose.
type LoggedEventStore struct {
	db *gorm.DB
}

// NewLoggedEventStore creates a logged event store.
func NewLoggedEventStore(db *gorm.DB) *LoggedEventStore {
	return &LoggedEventStore{db: db}
}

// Create appends an event.
func (s *LoggedEventStore) Create(event *models.LoggedEvent) error {
	return s.db.Create(event).Error
}

// Read loads one event by id with its display fields resolved.
func (s *LoggedEventStore) Read(id uint64) (*models.LoggedEvent, error) {
	var event models.LoggedEvent
	if err := s.db.First(&event, id).Error; err != nil {
		return nil, err
	}

	s.resolveDisplayFields(&event)

	return &event, nil
}

// Search lists events matching the filter, newest first, with display
// fields resolved.
func (s *LoggedEventStore) Search(q query.LoggedEvent) ([]models.LoggedEvent, error) {
	tx := s.db.Model(&models.LoggedEvent{})

	if q.EquipmentID != nil {
		tx = tx.Where("equipment_id = ?", *q.EquipmentID)
	}

	if q.LocationID != nil {
		tx = tx.Where(
			"equipment_id IN (SELECT id FROM equipment WHERE location_id = ?)",
			*q.LocationID,
		)
	}

	if q.TypeID != nil {
		tx = tx.Where("type_id = ?", *q.TypeID)
	}

	if q.Since != nil {
		tx = tx.Where("time >= ?", *q.Since)
	}

	if q.Until != nil {
		tx = tx.Where("time <= ?", *q.Until)
	}

	var events []models.LoggedEvent
	if err := tx.Order("time DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	for i := range events {
		s.resolveDisplayFields(&events[i])
	}

	return events, nil
}

// CountByDay returns per-day event counts for one piece of equipment
// since the given time. Keys use the 2006-01-02 date format; days with
// no events are absent from the map.
func (s *LoggedEventStore) CountByDay(equipmentID uint, since time.Time) (map[string]int64, error) {
	type dayCount struct {
		Day   string
		Count int64
	}

	var rows []dayCount
	err := s.db.Model(&models.LoggedEvent{}).
		Select("DATE(time) AS day, COUNT(*) AS count").
		Where("equipment_id = ? AND time >= ?", equipmentID, since).
		Group("DATE(time)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.Count
	}

	return counts, nil
}

// CountUses returns the number of successful authentications by the user
// on equipment of the given types. Used for badge computation.
func (s *LoggedEventStore) CountUses(userID uint64, equipmentTypeIDs []uint) (int64, error) {
	if len(equipmentTypeIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := s.db.Model(&models.LoggedEvent{}).
		Joins("JOIN cards ON cards.id = log.card_id").
		Joins("JOIN equipment ON equipment.id = log.equipment_id").
		Where("log.type_id = ?", models.EventSuccessfulAuthentication).
		Where("cards.user_id = ?", userID).
		Where("equipment.type_id IN ?", equipmentTypeIDs).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// resolveDisplayFields fills the denormalized read-time fields. Lookup
// failures leave the field empty rather than failing the read.
func (s *LoggedEventStore) resolveDisplayFields(event *models.LoggedEvent) {
	var equipment models.Equipment
	if err := s.db.Preload("Location").First(&equipment, event.EquipmentID).Error; err == nil {
		event.EquipmentName = equipment.Name
		event.LocationName = equipment.Location.Name
	}

	if event.CardID == 0 {
		return
	}

	var card models.Card
	if err := s.db.First(&card, event.CardID).Error; err != nil {
		return
	}

	event.CardTypeID = card.TypeID

	if card.UserID != nil {
		var user models.User
		if err := s.db.First(&user, *card.UserID).Error; err == nil {
			event.UserName = user.Name
		}
	}
}
