package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/ssupppp/bowldem-reddit/internal/models"
)

const (
	// EpochDate is the UTC calendar date of puzzle number zero
	EpochDate = "2026-01-15"

	// MaxGuesses is the attempt limit per day and the size of the win histogram
	MaxGuesses = 5

	// DateLayout formats puzzle dates as YYYY-MM-DD
	DateLayout = "2006-01-02"
)

// ErrNoPuzzles is returned when the puzzle list is empty
var ErrNoPuzzles = errors.New("puzzle list is empty")

// DateKey returns the UTC calendar date of t as YYYY-MM-DD. Every key built
// from the same calendar day is identical regardless of wall-clock time.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// PuzzleNumber returns the whole-day count from the epoch date to the given
// date. Dates before the epoch collapse to zero.
func PuzzleNumber(date time.Time) int {
	epoch, _ := time.Parse(DateLayout, EpochDate)

	d := date.UTC()
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	diff := int(day.Sub(epoch).Hours() / 24)
	if diff < 0 {
		return 0
	}
	return diff
}

// PuzzleIndex maps a puzzle number onto the fixed puzzle list, cycling once
// the list is exhausted.
func PuzzleIndex(puzzleNumber, totalPuzzles int) int {
	return puzzleNumber % totalPuzzles
}

// ResolvePuzzle deterministically maps a calendar date to one puzzle from the
// list. Every caller on the same UTC calendar date sees the identical puzzle.
func ResolvePuzzle(puzzles []*models.Puzzle, date time.Time) (*models.Puzzle, int, int, error) {
	if len(puzzles) == 0 {
		return nil, 0, 0, ErrNoPuzzles
	}

	puzzleNumber := PuzzleNumber(date)
	puzzleIndex := PuzzleIndex(puzzleNumber, len(puzzles))

	return puzzles[puzzleIndex], puzzleNumber, puzzleIndex, nil
}

// NextPuzzleIn returns the time remaining until the next puzzle (midnight UTC)
func NextPuzzleIn(now time.Time) time.Duration {
	n := now.UTC()
	midnight := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return midnight.Sub(n)
}

// FormatCountdown renders a duration as HH:MM:SS
func FormatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}

	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
