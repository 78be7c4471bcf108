package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtrainer/internal/training"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRecordCompletion_Counters(t *testing.T) {
	cfg := training.Configuration{ProblemCount: 3, SelectedNumbers: []int{2}}
	s := NewStats(t0)

	s = RecordCompletion(s, true, 1, cfg, t0.Add(time.Second))
	assert.Equal(t, 1, s.TotalProblems)
	assert.Equal(t, 1, s.CorrectFirstTry)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Nil(t, s.EndTime)

	s = RecordCompletion(s, false, 0, cfg, t0.Add(2*time.Second))
	assert.Equal(t, 2, s.TotalProblems)
	assert.Equal(t, 1, s.CorrectFirstTry)
	assert.Equal(t, 1, s.LongestStreak, "longest streak never decreases")
	assert.Nil(t, s.EndTime)
	assert.Zero(t, s.AveragePerProblem)
}

func TestRecordCompletion_FinalizesAtProblemCount(t *testing.T) {
	cfg := training.Configuration{ProblemCount: 4, SelectedNumbers: []int{3}}
	s := NewStats(t0)

	streak := 0
	for i := 0; i < 4; i++ {
		streak++
		s = RecordCompletion(s, true, streak, cfg, t0.Add(time.Duration(i+1)*10*time.Second))
	}

	require.NotNil(t, s.EndTime)
	assert.Equal(t, t0.Add(40*time.Second), *s.EndTime)
	assert.Equal(t, s.EndTime.Sub(s.StartTime)/time.Duration(cfg.ProblemCount), s.AveragePerProblem)
	assert.Equal(t, 10*time.Second, s.AveragePerProblem)
	assert.Equal(t, 4, s.LongestStreak)
	assert.Equal(t, 40*time.Second, s.Elapsed())
	assert.True(t, s.Finished())
}

func TestRecordCompletion_DoesNotMutatePrev(t *testing.T) {
	cfg := training.Configuration{ProblemCount: 1, SelectedNumbers: []int{3}}
	prev := NewStats(t0)
	_ = RecordCompletion(prev, true, 1, cfg, t0.Add(time.Minute))
	assert.Zero(t, prev.TotalProblems)
	assert.Nil(t, prev.EndTime)
}

func TestFirstTryPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
	}
	for _, tt := range tests {
		s := Stats{CorrectFirstTry: tt.correct, TotalProblems: tt.total}
		assert.Equal(t, tt.want, s.FirstTryPercent(), "%d/%d", tt.correct, tt.total)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{10*time.Minute + 30*time.Second, "10:30"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.d), "FormatClock(%s)", tt.d)
	}
}
