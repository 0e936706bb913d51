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

// usageStatsDays is the size of the trailing usage window, in days.
const usageStatsDays = 30

// startOfDay returns midnight of t's calendar day in t's location.
// Truncate would floor to UTC-midnight multiples and shift the window by
// a day in zones west of UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LoggedEventService reads the append-only event log. Events are only
// ever written by the device protocol, never through this service.
type LoggedEventService struct {
	events    *stores.LoggedEventStore
	equipment *stores.EquipmentStore
}

// NewLoggedEventService creates a logged event service.
func NewLoggedEventService(db *gorm.DB) *LoggedEventService {
	return &LoggedEventService{
		events:    stores.NewLoggedEventStore(db),
		equipment: stores.NewEquipmentStore(db),
	}
}

// Read returns one logged event with display fields resolved.
func (s *LoggedEventService) Read(sess *session.Session, id uint64) (*models.LoggedEvent, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLogsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadLog, MsgLogsNotAuthorized); err != nil {
		return nil, err
	}

	event, err := s.events.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgLogNotFound)
	}

	return event, nil
}

// ReadAll lists logged events matching the filter, newest first.
func (s *LoggedEventService) ReadAll(sess *session.Session, q query.LoggedEvent) ([]models.LoggedEvent, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLogsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListLogs, MsgLogsNotAuthorized); err != nil {
		return nil, err
	}

	return s.events.Search(q)
}

// UsageStatsForEquipment returns per-day event counts for one piece of
// equipment over the trailing 30 days. The result always holds exactly
// 30 keys in 2006-01-02 format, today included; days without events are
// zero, never absent.
func (s *LoggedEventService) UsageStatsForEquipment(
	sess *session.Session,
	equipmentID uint,
) (map[string]int64, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgLogsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListLogs, MsgLogsNotAuthorized); err != nil {
		return nil, err
	}

	if _, err := s.equipment.Read(equipmentID); err != nil {
		return nil, notFoundOr(err, MsgEquipmentNotFound)
	}

	today := startOfDay(time.Now())
	since := today.AddDate(0, 0, -(usageStatsDays - 1))

	counts, err := s.events.CountByDay(equipmentID, since)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64, usageStatsDays)
	for i := 0; i < usageStatsDays; i++ {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		stats[day] = counts[day]
	}

	return stats, nil
}
