package cli

import (
	"fmt"
	"strings"
)

// readLine prints a prompt and returns one trimmed input line.
func (a *App) readLine(prompt string) string {
	fmt.Print(prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
