package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestMonthRange(t *testing.T) {
	loc := saoPaulo(t)

	t.Run("half open window", func(t *testing.T) {
		start, end := MonthRange(2026, time.March, loc)

		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), start)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), end)
	})

	t.Run("december rolls into next year", func(t *testing.T) {
		start, end := MonthRange(2026, time.December, loc)

		assert.Equal(t, 2026, start.Year())
		assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, loc), end)
	})
}

func TestSameDay(t *testing.T) {
	loc := saoPaulo(t)

	// 23:00 UTC on the 10th is 20:00 on the 10th in Sao Paulo (UTC-3).
	late := time.Date(2026, 6, 10, 23, 0, 0, 0, time.UTC)
	// 01:00 UTC on the 11th is 22:00 on the 10th in Sao Paulo.
	pastMidnightUTC := time.Date(2026, 6, 11, 1, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(late, pastMidnightUTC, loc),
		"both instants fall on June 10 local time")
	assert.False(t, SameDay(late, pastMidnightUTC, time.UTC))
}

func TestDayOf(t *testing.T) {
	loc := saoPaulo(t)

	d := DayOf(time.Date(2026, 6, 11, 1, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, loc), d)
}

func TestEventSpans(t *testing.T) {
	loc := saoPaulo(t)
	day := func(d int) time.Time {
		return time.Date(2026, 7, d, 0, 0, 0, 0, loc)
	}

	t.Run("single day event matches only its start day", func(t *testing.T) {
		e := Event{StartDate: time.Date(2026, 7, 15, 21, 0, 0, 0, loc)}

		assert.True(t, e.Spans(day(15), loc))
		assert.False(t, e.Spans(day(14), loc))
		assert.False(t, e.Spans(day(16), loc))
	})

	t.Run("multi day event matches every day inclusive", func(t *testing.T) {
		end := time.Date(2026, 7, 17, 23, 0, 0, 0, loc)
		e := Event{
			StartDate: time.Date(2026, 7, 15, 12, 0, 0, 0, loc),
			EndDate:   &end,
		}

		assert.False(t, e.Spans(day(14), loc))
		assert.True(t, e.Spans(day(15), loc))
		assert.True(t, e.Spans(day(16), loc))
		assert.True(t, e.Spans(day(17), loc))
		assert.False(t, e.Spans(day(18), loc))
	})
}

func TestEventsOnDay(t *testing.T) {
	loc := saoPaulo(t)

	end := time.Date(2026, 8, 3, 20, 0, 0, 0, loc)
	events := []EventResponse{
		{Event: Event{Title: "Club Night", StartDate: time.Date(2026, 8, 1, 22, 0, 0, 0, loc)}},
		{Event: Event{Title: "Festival", StartDate: time.Date(2026, 8, 1, 14, 0, 0, 0, loc), EndDate: &end}},
		{Event: Event{Title: "Release Party", StartDate: time.Date(2026, 8, 5, 19, 0, 0, 0, loc)}},
	}

	onFirst := EventsOnDay(events, time.Date(2026, 8, 1, 0, 0, 0, 0, loc), loc)
	require.Len(t, onFirst, 2)

	onSecond := EventsOnDay(events, time.Date(2026, 8, 2, 0, 0, 0, 0, loc), loc)
	require.Len(t, onSecond, 1)
	assert.Equal(t, "Festival", onSecond[0].Title)

	onFourth := EventsOnDay(events, time.Date(2026, 8, 4, 0, 0, 0, 0, loc), loc)
	assert.Empty(t, onFourth)
}
