package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	CycleSettings *CycleSettingsRepository
	CycleLogs     *CycleLogRepository
	Todos         *TodoRepository
	Notes         *NoteRepository
	Events        *CalendarEventRepository
	Notifications *NotificationRepository
	Subscriptions *PushSubscriptionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		CycleSettings: NewCycleSettingsRepository(database),
		CycleLogs:     NewCycleLogRepository(database),
		Todos:         NewTodoRepository(database),
		Notes:         NewNoteRepository(database),
		Events:        NewCalendarEventRepository(database),
		Notifications: NewNotificationRepository(database),
		Subscriptions: NewPushSubscriptionRepository(database),
	}
}
