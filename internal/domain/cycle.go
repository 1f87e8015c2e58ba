package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CycleStat is the derived per-list cycle accounting. Never persisted;
// recomputed from the ledger on demand so it cannot diverge.
type CycleStat struct {
	ListID               int    `json:"list_id"`
	ListName             string `json:"list_name"`
	Color                string `json:"color"`
	CompletedChapters    int    `json:"completed_chapters"`
	TotalChapters        int    `json:"total_chapters"`
	CompletedCycles      int    `json:"completed_cycles"`
	CurrentCycleProgress int    `json:"current_cycle_progress"`
	ProgressPercent      int    `json:"progress_percent"`
}

// ComputeCycleStats derives a CycleStat for each reading list from the
// completion set, in catalog order.
func ComputeCycleStats(completed KeySet) []CycleStat {
	stats := make([]CycleStat, 0, len(ReadingLists))
	for _, list := range ReadingLists {
		suffix := "-" + strconv.Itoa(list.ID)
		completedCount := 0
		for key := range completed {
			if strings.HasSuffix(key, suffix) {
				completedCount++
			}
		}

		totalChapters := list.TotalChapters()
		currentCycleProgress := completedCount % totalChapters
		stats = append(stats, CycleStat{
			ListID:               list.ID,
			ListName:             list.Name,
			Color:                list.Color,
			CompletedChapters:    completedCount,
			TotalChapters:        totalChapters,
			CompletedCycles:      completedCount / totalChapters,
			CurrentCycleProgress: currentCycleProgress,
			ProgressPercent:      int(math.Round(float64(currentCycleProgress) / float64(totalChapters) * 100)),
		})
	}
	return stats
}

// TotalStats aggregates cycle stats across all lists.
type TotalStats struct {
	TotalCycles   int        `json:"total_cycles"`
	TotalChapters int        `json:"total_chapters"`
	MostReadList  *CycleStat `json:"most_read_list,omitempty"`
}

// ComputeTotalStats sums cycles and chapters across lists and identifies the
// most-read list. Ties go to the first list in catalog order; a list with
// zero completed cycles never qualifies.
func ComputeTotalStats(stats []CycleStat) TotalStats {
	var total TotalStats
	var most *CycleStat
	for i := range stats {
		total.TotalCycles += stats[i].CompletedCycles
		total.TotalChapters += stats[i].CompletedChapters
		if most == nil || stats[i].CompletedCycles > most.CompletedCycles {
			most = &stats[i]
		}
	}
	if most != nil && most.CompletedCycles > 0 {
		total.MostReadList = most
	}
	return total
}

// MilestoneType tags the kind of milestone crossed.
type MilestoneType string

// Milestone kinds, in precedence order.
const (
	MilestoneFirstChapter  MilestoneType = "first_chapter"
	MilestoneCycleComplete MilestoneType = "cycle_complete"
	MilestoneHalfway       MilestoneType = "halfway"
)

// Milestone is an ephemeral event derived from a single-chapter increment.
// It is announced once at the transition and never persisted.
type Milestone struct {
	Type        MilestoneType `json:"type"`
	ListID      int           `json:"list_id"`
	ListName    string        `json:"list_name"`
	CycleNumber int           `json:"cycle_number,omitempty"`
	Message     string        `json:"message"`
}

// CheckMilestone classifies the milestone crossed, if any, when a list's
// completed count goes from previousCount to its current value in stats.
// Only valid for single-chapter increments; exactly one kind fires, checked
// in precedence order: first chapter, cycle complete, halfway.
func CheckMilestone(listID, previousCount int, stats []CycleStat) *Milestone {
	var stat *CycleStat
	for i := range stats {
		if stats[i].ListID == listID {
			stat = &stats[i]
			break
		}
	}
	if stat == nil {
		return nil
	}

	currentCount := stat.CompletedChapters
	totalChapters := stat.TotalChapters

	if previousCount == 0 && currentCount == 1 {
		return &Milestone{
			Type:     MilestoneFirstChapter,
			ListID:   listID,
			ListName: stat.ListName,
			Message:  fmt.Sprintf("You've started reading %s!", stat.ListName),
		}
	}

	previousCycles := previousCount / totalChapters
	currentCycles := currentCount / totalChapters
	if currentCycles > previousCycles {
		plural := ""
		if currentCycles > 1 {
			plural = "s"
		}
		return &Milestone{
			Type:        MilestoneCycleComplete,
			ListID:      listID,
			ListName:    stat.ListName,
			CycleNumber: currentCycles,
			Message:     fmt.Sprintf("You've completed %s %d time%s!", stat.ListName, currentCycles, plural),
		}
	}

	halfwayPoint := totalChapters / 2
	if previousCount%totalChapters < halfwayPoint && currentCount%totalChapters >= halfwayPoint {
		return &Milestone{
			Type:     MilestoneHalfway,
			ListID:   listID,
			ListName: stat.ListName,
			Message:  fmt.Sprintf("Halfway through %s!", stat.ListName),
		}
	}

	return nil
}

// MilestoneMessages returns the summary lines shown on the milestones page:
// one line per list with at least one completed cycle.
func MilestoneMessages(stats []CycleStat) []string {
	var messages []string
	for _, stat := range stats {
		switch {
		case stat.CompletedCycles == 1:
			messages = append(messages, fmt.Sprintf("You've read %s once", stat.ListName))
		case stat.CompletedCycles > 1:
			messages = append(messages, fmt.Sprintf("You've read %s %d times", stat.ListName, stat.CompletedCycles))
		}
	}
	return messages
}
