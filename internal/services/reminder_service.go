package services

import (
	"fmt"
	"log"
	"time"

	"github.com/mira-app/mira/internal/models"
	"github.com/robfig/cron/v3"
)

type ReminderUserRepository interface {
	ListIDs() ([]uint, error)
}

type ReminderSettingsRepository interface {
	FindByUser(userID uint) (models.CycleSettings, bool, error)
}

type ReminderNotificationRepository interface {
	ExistsByUserKindSince(userID uint, kind string, since time.Time) (bool, error)
	Create(notification *models.Notification) error
}

// Reminder is a notification the scheduler decided is due today.
type Reminder struct {
	Kind  string
	Title string
	Body  string
}

// ReminderService turns predicted cycle state into in-app notifications
// on a cron schedule. Each kind fires at most once per user per day.
type ReminderService struct {
	users         ReminderUserRepository
	settings      ReminderSettingsRepository
	notifications ReminderNotificationRepository
	location      *time.Location
	schedule      string
	runner        *cron.Cron
}

func NewReminderService(
	users ReminderUserRepository,
	settings ReminderSettingsRepository,
	notifications ReminderNotificationRepository,
	location *time.Location,
	schedule string,
) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	if schedule == "" {
		schedule = "0 8 * * *"
	}
	return &ReminderService{
		users:         users,
		settings:      settings,
		notifications: notifications,
		location:      location,
		schedule:      schedule,
	}
}

func (service *ReminderService) Start() error {
	runner := cron.New(cron.WithLocation(service.location))
	if _, err := runner.AddFunc(service.schedule, func() {
		service.RunOnce(time.Now())
	}); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	runner.Start()
	service.runner = runner
	return nil
}

func (service *ReminderService) Stop() {
	if service.runner != nil {
		service.runner.Stop()
	}
}

func (service *ReminderService) RunOnce(now time.Time) {
	userIDs, err := service.users.ListIDs()
	if err != nil {
		log.Printf("reminders: list users failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		if err := service.remindUser(userID, now); err != nil {
			log.Printf("reminders: user %d failed: %v", userID, err)
		}
	}
}

func (service *ReminderService) remindUser(userID uint, now time.Time) error {
	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	config, ready := PredictionConfigAt(settings, service.location)
	if !ready {
		return nil
	}

	state, err := ComputeCycleState(config, now.In(service.location))
	if err != nil {
		return err
	}

	dayStart := DateAtLocation(now, service.location)
	for _, reminder := range DueReminders(state) {
		sentToday, err := service.notifications.ExistsByUserKindSince(userID, reminder.Kind, dayStart)
		if err != nil {
			return err
		}
		if sentToday {
			continue
		}

		notification := models.Notification{
			UserID:    userID,
			Kind:      reminder.Kind,
			Title:     reminder.Title,
			Body:      reminder.Body,
			CreatedAt: now.In(service.location),
		}
		if err := service.notifications.Create(&notification); err != nil {
			return err
		}
	}
	return nil
}

// DueReminders maps a cycle state to the reminders due on its reference
// day. Pure so the firing rules stay testable without a database.
func DueReminders(state CycleState) []Reminder {
	reminders := make([]Reminder, 0, 2)

	switch {
	case state.CurrentDay == 1:
		reminders = append(reminders, Reminder{
			Kind:  models.NotificationPeriodStart,
			Title: "Period predicted to start today",
			Body:  "Cycle day 1 — log your flow when you can.",
		})
	case state.DaysUntilNext > 0 && state.DaysUntilNext <= 2:
		reminders = append(reminders, Reminder{
			Kind:  models.NotificationPeriodSoon,
			Title: fmt.Sprintf("Period expected in %d day(s)", state.DaysUntilNext),
			Body:  fmt.Sprintf("Next period predicted for %s.", state.PredictedNextPeriodStart.Format("2006-01-02")),
		})
	}

	if state.Phase == PhaseOvulation {
		reminders = append(reminders, Reminder{
			Kind:  models.NotificationOvulation,
			Title: "Ovulation window",
			Body:  fmt.Sprintf("Cycle day %d falls in your estimated ovulation window.", state.CurrentDay),
		})
	}

	return reminders
}
