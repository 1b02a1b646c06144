package cli

import (
	"context"
	"fmt"
	"strconv"
)

func parseQuestion(arg string) (int, bool) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Question must be a number")
		return 0, false
	}
	return idx, true
}

func (a *App) listAnswers(ctx context.Context, questionArg string) {
	idx, ok := parseQuestion(questionArg)
	if !ok {
		return
	}
	opts, err := a.answers.GetAnswers(ctx, idx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, o := range opts {
		fmt.Println("-", o.Answer)
	}
}

func (a *App) addAnswer(ctx context.Context, questionArg, text string) {
	idx, ok := parseQuestion(questionArg)
	if !ok {
		return
	}
	if err := a.answers.AddCustomAnswer(ctx, text, idx); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Added")
}

func (a *App) removeAnswer(ctx context.Context, questionArg, text string) {
	idx, ok := parseQuestion(questionArg)
	if !ok {
		return
	}
	if err := a.answers.RemoveAnswer(ctx, text, idx); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Removed")
}
