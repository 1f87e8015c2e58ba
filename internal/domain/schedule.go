package domain

import (
	"errors"
	"time"
)

// ErrInvalidDayOfYear is returned when a caller passes a day of year < 1.
// Day numbering is 1-based; there is no day zero.
var ErrInvalidDayOfYear = errors.New("day of year must be >= 1")

// DayOfYear returns the 1-based ordinal day of the date within its calendar
// year (Jan 1 = 1). The scheduler is year-relative: cycles realign every
// Jan 1 rather than running on a global epoch.
func DayOfYear(date time.Time) int {
	return date.YearDay()
}

// TodayReading is the display-ready assignment for one list on one day.
type TodayReading struct {
	ListID    int    `json:"list_id"`
	ListName  string `json:"list_name"`
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

// AssignmentsForDay maps a day of year to the ten assigned chapters, one per
// reading list in catalog order. Each list cycles independently through its
// own total chapter count. The mapping is total and deterministic for any
// dayOfYear >= 1.
func AssignmentsForDay(dayOfYear int, completed KeySet) ([]TodayReading, error) {
	if dayOfYear < 1 {
		return nil, ErrInvalidDayOfYear
	}

	readings := make([]TodayReading, 0, len(ReadingLists))
	for _, list := range ReadingLists {
		readings = append(readings, assignmentForList(list, dayOfYear, completed))
	}
	return readings, nil
}

// assignmentForList locates the book and chapter for the list's position in
// its cycle on the given day.
func assignmentForList(list ReadingList, dayOfYear int, completed KeySet) TodayReading {
	totalChapters := list.TotalChapters()
	dayInCycle := ((dayOfYear - 1) % totalChapters) + 1

	chapterCount := 0
	for _, book := range list.Books {
		if chapterCount+book.Chapters >= dayInCycle {
			return TodayReading{
				ListID:    list.ID,
				ListName:  list.Name,
				Book:      book.Name,
				Chapter:   dayInCycle - chapterCount,
				Color:     list.Color,
				Completed: completed.Has(CompletionKey(dayOfYear, list.ID)),
			}
		}
		chapterCount += book.Chapters
	}

	// Unreachable for well-formed catalog data: dayInCycle is always within
	// [1, totalChapters]. Guarded rather than panicking.
	return TodayReading{
		ListID:   list.ID,
		ListName: list.Name,
		Book:     list.Books[0].Name,
		Chapter:  1,
		Color:    list.Color,
	}
}
