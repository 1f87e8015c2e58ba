// Package domain contains the reading-plan engine: the static plan catalog,
// the day scheduler, the progress ledger, and cycle/milestone accounting.
// Everything here is pure; persistence and transport live elsewhere.
package domain

import "fmt"

// ListCount is the fixed number of reading lists in the plan.
const ListCount = 10

// Book is a single book within a reading list.
type Book struct {
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

// ReadingList is one of the ten tracks of the plan. Lists are static
// configuration: loaded once, never mutated.
type ReadingList struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Books       []Book `json:"books"`
	Color       string `json:"color"`
}

// TotalChapters returns the cycle length of the list (sum of chapter counts).
func (l ReadingList) TotalChapters() int {
	total := 0
	for _, b := range l.Books {
		total += b.Chapters
	}
	return total
}

// ReadingLists is the full plan catalog in display order.
// Book and chapter data follow the traditional ten-list reading system.
var ReadingLists = []ReadingList{
	{
		ID:          1,
		Name:        "Gospels",
		Description: "Matthew, Mark, Luke, John",
		Books: []Book{
			{Name: "Matthew", Chapters: 28},
			{Name: "Mark", Chapters: 16},
			{Name: "Luke", Chapters: 24},
			{Name: "John", Chapters: 21},
		},
		Color: "hsl(235 45% 30%)",
	},
	{
		ID:          2,
		Name:        "Pentateuch",
		Description: "Genesis through Deuteronomy",
		Books: []Book{
			{Name: "Genesis", Chapters: 50},
			{Name: "Exodus", Chapters: 40},
			{Name: "Leviticus", Chapters: 27},
			{Name: "Numbers", Chapters: 36},
			{Name: "Deuteronomy", Chapters: 34},
		},
		Color: "hsl(150 45% 40%)",
	},
	{
		ID:          3,
		Name:        "Paul's Letters I",
		Description: "Romans through Hebrews",
		Books: []Book{
			{Name: "Romans", Chapters: 16},
			{Name: "1 Corinthians", Chapters: 16},
			{Name: "2 Corinthians", Chapters: 13},
			{Name: "Galatians", Chapters: 6},
			{Name: "Ephesians", Chapters: 6},
			{Name: "Philippians", Chapters: 4},
			{Name: "Colossians", Chapters: 4},
			{Name: "Hebrews", Chapters: 13},
		},
		Color: "hsl(200 50% 45%)",
	},
	{
		ID:          4,
		Name:        "Paul's Letters II",
		Description: "Thessalonians through Revelation",
		Books: []Book{
			{Name: "1 Thessalonians", Chapters: 5},
			{Name: "2 Thessalonians", Chapters: 3},
			{Name: "1 Timothy", Chapters: 6},
			{Name: "2 Timothy", Chapters: 4},
			{Name: "Titus", Chapters: 3},
			{Name: "Philemon", Chapters: 1},
			{Name: "James", Chapters: 5},
			{Name: "1 Peter", Chapters: 5},
			{Name: "2 Peter", Chapters: 3},
			{Name: "1 John", Chapters: 5},
			{Name: "2 John", Chapters: 1},
			{Name: "3 John", Chapters: 1},
			{Name: "Jude", Chapters: 1},
			{Name: "Revelation", Chapters: 22},
		},
		Color: "hsl(280 40% 50%)",
	},
	{
		ID:          5,
		Name:        "Wisdom Literature",
		Description: "Job, Ecclesiastes, Song of Solomon",
		Books: []Book{
			{Name: "Job", Chapters: 42},
			{Name: "Ecclesiastes", Chapters: 12},
			{Name: "Song of Solomon", Chapters: 8},
		},
		Color: "hsl(40 85% 50%)",
	},
	{
		ID:          6,
		Name:        "Psalms",
		Description: "All 150 Psalms",
		Books: []Book{
			{Name: "Psalms", Chapters: 150},
		},
		Color: "hsl(340 50% 50%)",
	},
	{
		ID:          7,
		Name:        "Proverbs",
		Description: "A proverb for each day",
		Books: []Book{
			{Name: "Proverbs", Chapters: 31},
		},
		Color: "hsl(20 70% 50%)",
	},
	{
		ID:          8,
		Name:        "History",
		Description: "Joshua through Esther",
		Books: []Book{
			{Name: "Joshua", Chapters: 24},
			{Name: "Judges", Chapters: 21},
			{Name: "Ruth", Chapters: 4},
			{Name: "1 Samuel", Chapters: 31},
			{Name: "2 Samuel", Chapters: 24},
			{Name: "1 Kings", Chapters: 22},
			{Name: "2 Kings", Chapters: 25},
			{Name: "1 Chronicles", Chapters: 29},
			{Name: "2 Chronicles", Chapters: 36},
			{Name: "Ezra", Chapters: 10},
			{Name: "Nehemiah", Chapters: 13},
			{Name: "Esther", Chapters: 10},
		},
		Color: "hsl(100 40% 45%)",
	},
	{
		ID:          9,
		Name:        "Prophets",
		Description: "Isaiah through Malachi",
		Books: []Book{
			{Name: "Isaiah", Chapters: 66},
			{Name: "Jeremiah", Chapters: 52},
			{Name: "Lamentations", Chapters: 5},
			{Name: "Ezekiel", Chapters: 48},
			{Name: "Daniel", Chapters: 12},
			{Name: "Hosea", Chapters: 14},
			{Name: "Joel", Chapters: 3},
			{Name: "Amos", Chapters: 9},
			{Name: "Obadiah", Chapters: 1},
			{Name: "Jonah", Chapters: 4},
			{Name: "Micah", Chapters: 7},
			{Name: "Nahum", Chapters: 3},
			{Name: "Habakkuk", Chapters: 3},
			{Name: "Zephaniah", Chapters: 3},
			{Name: "Haggai", Chapters: 2},
			{Name: "Zechariah", Chapters: 14},
			{Name: "Malachi", Chapters: 4},
		},
		Color: "hsl(260 45% 55%)",
	},
	{
		ID:          10,
		Name:        "Acts",
		Description: "The Acts of the Apostles",
		Books: []Book{
			{Name: "Acts", Chapters: 28},
		},
		Color: "hsl(180 45% 45%)",
	},
}

// The catalog is static configuration; a malformed entry is a programming
// error caught at startup.
func init() {
	for i, l := range ReadingLists {
		if l.ID != i+1 {
			panic(fmt.Sprintf("reading list %q has id %d, want %d", l.Name, l.ID, i+1))
		}
		if l.TotalChapters() <= 0 {
			panic(fmt.Sprintf("reading list %q has no chapters", l.Name))
		}
	}
}

// ListByID returns the reading list with the given ID.
func ListByID(id int) (ReadingList, bool) {
	for _, l := range ReadingLists {
		if l.ID == id {
			return l, true
		}
	}
	return ReadingList{}, false
}

// ValidList reports whether id names one of the ten lists.
func ValidList(id int) bool {
	return id >= 1 && id <= ListCount
}
