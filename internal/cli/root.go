package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to MoodKeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("mood> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Journal:   add, list, today, stats, delete <id>")
			fmt.Println("Analytics: week, weeks")
			fmt.Println("Reminders: reminders, remind [HH:mm], unremind <id>")
			fmt.Println("Answers:   answers <q>, addanswer <q> <text>, delanswer <q> <text>")
			fmt.Println("Other:     exit")
		case "add":
			a.addEntry(ctx)
		case "list":
			a.list(ctx)
		case "today":
			a.today(ctx)
		case "stats":
			a.stats(ctx)
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			a.deleteEntry(ctx, args[0])
		case "week":
			a.week(ctx)
		case "weeks":
			a.weeks(ctx)
		case "reminders":
			a.listReminders(ctx)
		case "remind":
			if len(args) == 0 {
				a.addReminder(ctx, "")
				continue
			}
			a.addReminder(ctx, args[0])
		case "unremind":
			if len(args) == 0 {
				fmt.Println("Usage: unremind <id>")
				continue
			}
			a.removeReminder(ctx, args[0])
		case "answers":
			if len(args) == 0 {
				fmt.Println("Usage: answers <question>")
				continue
			}
			a.listAnswers(ctx, args[0])
		case "addanswer":
			if len(args) < 2 {
				fmt.Println("Usage: addanswer <question> <text>")
				continue
			}
			a.addAnswer(ctx, args[0], strings.Join(args[1:], " "))
		case "delanswer":
			if len(args) < 2 {
				fmt.Println("Usage: delanswer <question> <text>")
				continue
			}
			a.removeAnswer(ctx, args[0], strings.Join(args[1:], " "))
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
