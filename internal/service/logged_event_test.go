package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
)

func TestLoggedEventService_UsageStats(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	sess := adminSession(t, db)
	svc := NewLoggedEventService(db)

	events := stores.NewLoggedEventStore(db)
	now := time.Now()
	require.NoError(t, events.Create(&models.LoggedEvent{
		Time:        now,
		TypeID:      models.EventSuccessfulAuthentication,
		EquipmentID: shop.openDevice.ID,
	}))
	require.NoError(t, events.Create(&models.LoggedEvent{
		Time:        now,
		TypeID:      models.EventDeauthentication,
		EquipmentID: shop.openDevice.ID,
	}))
	// outside the trailing window, must not appear
	require.NoError(t, events.Create(&models.LoggedEvent{
		Time:        now.AddDate(0, 0, -45),
		TypeID:      models.EventSuccessfulAuthentication,
		EquipmentID: shop.openDevice.ID,
	}))

	stats, err := svc.UsageStatsForEquipment(sess, shop.openDevice.ID)
	require.NoError(t, err)

	// exactly 30 keys, today included, quiet days zero-filled
	assert.Len(t, stats, 30)

	today := now.Format("2006-01-02")
	assert.Equal(t, int64(2), stats[today])

	var zeroDays int
	for _, count := range stats {
		if count == 0 {
			zeroDays++
		}
	}
	assert.Equal(t, 29, zeroDays)
}

func TestStartOfDayUsesLocalCalendarDay(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			"morning west of UTC",
			time.Date(2026, time.August, 30, 10, 0, 0, 0, time.FixedZone("UTC-4", -4*60*60)),
			"2026-08-30",
		},
		{
			"just after local midnight west of UTC",
			time.Date(2026, time.August, 30, 0, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
			"2026-08-30",
		},
		{
			"evening east of UTC",
			time.Date(2026, time.August, 30, 23, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)),
			"2026-08-30",
		},
		{
			"utc",
			time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
			"2026-08-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := startOfDay(tt.at)
			assert.Equal(t, tt.want, day.Format("2006-01-02"))
			assert.Equal(t, tt.at.Location(), day.Location())

			// the window anchored here must contain the calendar day of
			// the anchor time itself
			found := false
			for i := 0; i < usageStatsDays; i++ {
				if day.AddDate(0, 0, -i).Format("2006-01-02") == tt.at.Format("2006-01-02") {
					found = true
				}
			}
			assert.True(t, found)
		})
	}
}

func TestLoggedEventService_UsageStatsUnknownEquipment(t *testing.T) {
	db := testDB(t)
	sess := adminSession(t, db)

	_, err := NewLoggedEventService(db).UsageStatsForEquipment(sess, 4242)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLoggedEventService_ReadAllFilters(t *testing.T) {
	db := testDB(t)
	shop := buildShop(t, db)
	sess := adminSession(t, db)
	svc := NewLoggedEventService(db)

	events := stores.NewLoggedEventStore(db)
	base := time.Now().Add(-time.Hour)
	require.NoError(t, events.Create(&models.LoggedEvent{
		Time:        base,
		TypeID:      models.EventStartupComplete,
		EquipmentID: shop.openDevice.ID,
	}))
	require.NoError(t, events.Create(&models.LoggedEvent{
		Time:        base.Add(time.Minute),
		TypeID:      models.EventSuccessfulAuthentication,
		EquipmentID: shop.trainedDevice.ID,
	}))

	typeID := models.EventStartupComplete
	filtered, err := svc.ReadAll(sess, query.LoggedEvent{TypeID: &typeID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, shop.openDevice.ID, filtered[0].EquipmentID)
	assert.Equal(t, "Printer 1", filtered[0].EquipmentName)
	assert.Equal(t, "Robotics Shop", filtered[0].LocationName)

	all, err := svc.ReadAll(sess, query.LoggedEvent{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	assert.Equal(t, models.EventSuccessfulAuthentication, all[0].TypeID)
}

func TestLoggedEventService_RequiresPermission(t *testing.T) {
	db := testDB(t)
	svc := NewLoggedEventService(db)

	_, err := svc.ReadAll(anonymous(db), query.LoggedEvent{})
	require.Error(t, err)
	assert.True(t, IsAuthentication(err))
}
