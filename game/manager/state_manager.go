package manager

import (
	"sort"
	"time"
)

// RunRecord describes one life of the snake, from (re)spawn to self-collision.
type RunRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Length    int       `json:"length"`
	Steps     int       `json:"steps"`
}

// Duration of the run in seconds.
func (r RunRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// StateManager keeps the session statistics in memory. Nothing is written to
// disk.
type StateManager struct {
	runs      []RunRecord
	best      int
	foodEaten int
	runStart  time.Time
	runSteps  int
	now       func() time.Time
}

func NewStateManager() *StateManager {
	return newStateManager(time.Now)
}

func newStateManager(now func() time.Time) *StateManager {
	return &StateManager{
		runs:     make([]RunRecord, 0),
		best:     1,
		runStart: now(),
		now:      now,
	}
}

// Step counts one tick of the current run.
func (sm *StateManager) Step() {
	sm.runSteps++
}

// FoodEaten records a meal; length is the snake length after growing.
func (sm *StateManager) FoodEaten(length int) {
	sm.foodEaten++
	sm.UpdateScore(length)
}

func (sm *StateManager) UpdateScore(length int) {
	if length > sm.best {
		sm.best = length
	}
}

// EndRun closes the current run at the given length and starts a new one.
func (sm *StateManager) EndRun(length int) RunRecord {
	end := sm.now()
	record := RunRecord{
		StartTime: sm.runStart,
		EndTime:   end,
		Length:    length,
		Steps:     sm.runSteps,
	}
	sm.runs = append(sm.runs, record)
	sm.UpdateScore(length)

	sm.runStart = end
	sm.runSteps = 0
	return record
}

func (sm *StateManager) GetRuns() []RunRecord {
	return sm.runs
}

func (sm *StateManager) GetResets() int {
	return len(sm.runs)
}

func (sm *StateManager) GetBestLength() int {
	return sm.best
}

func (sm *StateManager) GetFoodEaten() int {
	return sm.foodEaten
}

func (sm *StateManager) GetAverageLength() float64 {
	if len(sm.runs) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.runs {
		total += r.Length
	}
	return float64(total) / float64(len(sm.runs))
}

func (sm *StateManager) GetMedianLength() float64 {
	if len(sm.runs) == 0 {
		return 0
	}
	lengths := make([]int, len(sm.runs))
	for i, r := range sm.runs {
		lengths[i] = r.Length
	}
	sort.Ints(lengths)
	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		return float64(lengths[mid-1]+lengths[mid]) / 2
	}
	return float64(lengths[mid])
}

// GetAverageDuration returns the mean run duration in seconds.
func (sm *StateManager) GetAverageDuration() float64 {
	if len(sm.runs) == 0 {
		return 0
	}
	var total float64
	for _, r := range sm.runs {
		total += r.Duration()
	}
	return total / float64(len(sm.runs))
}
