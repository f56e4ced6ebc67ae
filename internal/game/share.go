package game

import (
	"fmt"
	"strings"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

// ShareText renders a spoiler-free emoji grid of the day's guesses for
// sharing, one row per guess in the order they were made.
func ShareText(puzzleNumber int, history []*models.GuessFeedback, streak int) string {
	lines := make([]string, 0, len(history))

	for _, feedback := range history {
		var row strings.Builder
		row.WriteString(flag(feedback.PlayedInGame))
		row.WriteString(flag(feedback.SameTeam))
		row.WriteString(flag(feedback.SameRole))
		if feedback.IsMVP {
			row.WriteString("🏆")
		} else {
			row.WriteString("🔴")
		}
		lines = append(lines, row.String())
	}

	text := fmt.Sprintf("🏏 Bowldem #%d\n\n%s", puzzleNumber, strings.Join(lines, "\n"))
	if streak > 1 {
		text += fmt.Sprintf("\n\n🔥%d", streak)
	}

	return text + "\n\nPlay on Reddit!"
}

func flag(hit bool) string {
	if hit {
		return "🟢"
	}
	return "🔴"
}
