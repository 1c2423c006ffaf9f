package services

import (
	"testing"
	"time"

	"github.com/mira-app/mira/internal/models"
)

func TestDueRemindersPeriodStartDay(t *testing.T) {
	state := CycleState{CurrentDay: 1, Phase: PhaseMenstruation, DaysUntilNext: 28}

	reminders := DueReminders(state)
	if len(reminders) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders))
	}
	if reminders[0].Kind != models.NotificationPeriodStart {
		t.Fatalf("expected period start, got %s", reminders[0].Kind)
	}
}

func TestDueRemindersPeriodSoon(t *testing.T) {
	for _, daysUntil := range []int{1, 2} {
		state := CycleState{CurrentDay: 27, Phase: PhaseLuteal, DaysUntilNext: daysUntil,
			PredictedNextPeriodStart: mustParseDay("2025-01-29")}

		reminders := DueReminders(state)
		if len(reminders) != 1 || reminders[0].Kind != models.NotificationPeriodSoon {
			t.Fatalf("days until %d: expected period soon, got %+v", daysUntil, reminders)
		}
	}
}

func TestDueRemindersQuietMidCycle(t *testing.T) {
	state := CycleState{CurrentDay: 8, Phase: PhaseFollicular, DaysUntilNext: 20}
	if reminders := DueReminders(state); len(reminders) != 0 {
		t.Fatalf("expected no reminders, got %+v", reminders)
	}
}

func TestDueRemindersOvulation(t *testing.T) {
	state := CycleState{CurrentDay: 13, Phase: PhaseOvulation, DaysUntilNext: 15}

	reminders := DueReminders(state)
	if len(reminders) != 1 || reminders[0].Kind != models.NotificationOvulation {
		t.Fatalf("expected ovulation reminder, got %+v", reminders)
	}
}

type fakeReminderUsers struct {
	ids []uint
}

func (repo *fakeReminderUsers) ListIDs() ([]uint, error) {
	return repo.ids, nil
}

type fakeReminderNotifications struct {
	created []models.Notification
}

func (repo *fakeReminderNotifications) ExistsByUserKindSince(userID uint, kind string, since time.Time) (bool, error) {
	for _, notification := range repo.created {
		if notification.UserID == userID && notification.Kind == kind && !notification.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (repo *fakeReminderNotifications) Create(notification *models.Notification) error {
	repo.created = append(repo.created, *notification)
	return nil
}

func TestRunOnceCreatesNotificationOncePerDay(t *testing.T) {
	users := &fakeReminderUsers{ids: []uint{1}}
	start := mustParseDay("2025-01-01")
	settings := newFakeCycleSettingsRepository()
	settings.stored[1] = models.CycleSettings{UserID: 1, CycleLength: 28, PeriodLength: 5, PeriodStartDate: &start}
	notifications := &fakeReminderNotifications{}

	service := NewReminderService(users, settings, notifications, time.UTC, "")

	// Day 1 of the second cycle.
	now := start.AddDate(0, 0, 28).Add(8 * time.Hour)
	service.RunOnce(now)
	if len(notifications.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications.created))
	}
	if notifications.created[0].Kind != models.NotificationPeriodStart {
		t.Fatalf("expected period start, got %s", notifications.created[0].Kind)
	}

	// A second run the same day must not duplicate it.
	service.RunOnce(now.Add(2 * time.Hour))
	if len(notifications.created) != 1 {
		t.Fatalf("expected dedupe, got %d notifications", len(notifications.created))
	}
}

func TestRunOnceSkipsUnconfiguredUsers(t *testing.T) {
	users := &fakeReminderUsers{ids: []uint{1, 2}}
	settings := newFakeCycleSettingsRepository()
	settings.stored[1] = models.CycleSettings{UserID: 1, CycleLength: 28} // not prediction-ready
	notifications := &fakeReminderNotifications{}

	service := NewReminderService(users, settings, notifications, time.UTC, "")
	service.RunOnce(mustParseDay("2025-01-01"))

	if len(notifications.created) != 0 {
		t.Fatalf("expected no notifications for unconfigured users, got %d", len(notifications.created))
	}
}
