package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) week(ctx context.Context) {
	week, err := a.analysis.FetchWeeklyData(ctx, time.Now())
	if err != nil {
		// data temporarily unavailable, which is not the same as "no data"
		fmt.Println("Analytics unavailable:", err)
		return
	}

	fmt.Printf("Week %s – %s\n",
		week.Interval.Start.Format("2006-01-02"),
		week.Interval.End.AddDate(0, 0, -1).Format("2006-01-02"))

	for i := 0; i < 7; i++ {
		day := week.Interval.Start.AddDate(0, 0, i)
		entries := week.DailyEmotions[day]
		fmt.Printf("  %s (%s): %d entr(y/ies)\n", day.Format("Mon"), day.Format("01-02"), len(entries))
	}

	if len(week.MostFrequentEmotions) > 0 {
		fmt.Println("Most frequent:")
		for _, ec := range week.MostFrequentEmotions {
			fmt.Printf("  %-8s %d\n", ec.Emotion, ec.Count)
		}
	}

	if len(week.TimeOfDayMoods) > 0 {
		fmt.Println("By time of day:")
		for bucket, shares := range week.TimeOfDayMoods {
			fmt.Printf("  %s:\n", bucket)
			for _, s := range shares {
				fmt.Printf("    %-8s %.0f%%\n", s.Emotion, s.Share*100)
			}
		}
	}
}

func (a *App) weeks(ctx context.Context) {
	weeks, err := a.analysis.FetchAllWeeks(ctx)
	if err != nil {
		fmt.Println("Analytics unavailable:", err)
		return
	}
	if len(weeks) == 0 {
		fmt.Println("No entries yet")
		return
	}
	for _, w := range weeks {
		fmt.Printf("%s – %s\n", w.Start.Format("2006-01-02"), w.End.AddDate(0, 0, -1).Format("2006-01-02"))
	}
}
