package cli

import (
	"context"
	"fmt"

	"github.com/evlasova/moodkeeper/internal/models"
)

func (a *App) addEntry(ctx context.Context) {
	fmt.Print("How do you feel? (")
	for i, e := range models.Emotions() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(e)
	}
	fmt.Println(")")

	emotion, err := models.ParseEmotion(a.readLine("emotion> "))
	if err != nil {
		fmt.Println("Unknown emotion")
		return
	}

	entry := models.JournalEntry{
		Emotion:     emotion,
		AnswerOne:   a.readLine("What influenced your mood? "),
		AnswerTwo:   a.readLine("What helped you today? "),
		AnswerThree: a.readLine("What would make tomorrow better? "),
	}

	saved, err := a.journal.SaveRecord(ctx, entry)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Saved entry", saved.ID)
}

func (a *App) list(ctx context.Context) {
	entries, err := a.journal.FetchRecords(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %-8s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Emotion, e.ID)
	}
}

func (a *App) today(ctx context.Context) {
	emotions, err := a.journal.FetchTodayEmotions(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(emotions) == 0 {
		fmt.Println("Nothing logged today")
		return
	}
	for _, e := range emotions {
		fmt.Println("-", e)
	}
}

func (a *App) stats(ctx context.Context) {
	stats := a.journal.FetchStatistics(ctx)
	fmt.Printf("Total entries: %d\n", stats.Total)
	fmt.Printf("Today:         %d\n", stats.Today)
	fmt.Printf("Streak:        %d day(s)\n", stats.Streak)
}

func (a *App) deleteEntry(ctx context.Context, id string) {
	if err := a.journal.DeleteRecord(ctx, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Deleted", id)
}
