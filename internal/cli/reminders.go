package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) listReminders(ctx context.Context) {
	rems, err := a.reminders.GetAll(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(rems) == 0 {
		fmt.Println("No reminders")
		return
	}
	for _, r := range rems {
		fmt.Printf("%s  %s\n", r.Time, r.ID)
	}
}

func (a *App) addReminder(ctx context.Context, timeOfDay string) {
	// no explicit time: schedule the configured interval from now
	if timeOfDay == "" {
		timeOfDay = time.Now().Add(a.config.ReminderDefaultInterval).Format("15:04")
	}
	rem, err := a.reminders.Add(ctx, timeOfDay)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Reminder set for", rem.Time)
}

func (a *App) removeReminder(ctx context.Context, id string) {
	if err := a.reminders.Remove(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Removed", id)
}
