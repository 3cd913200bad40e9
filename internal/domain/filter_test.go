package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReservation(activity Activity, date time.Time) *Reservation {
	return &Reservation{
		CustomerName: "Cliente",
		Activity:     activity,
		Date:         date,
	}
}

func TestFilterCalendar(t *testing.T) {
	october := makeReservation(ActivityKayak, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))
	november := makeReservation(ActivityKayak, time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC))
	octoberLastYear := makeReservation(ActivityKayak, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC))
	paddle := makeReservation(ActivityPaddleSurf, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC))

	all := []*Reservation{october, november, octoberLastYear, paddle}

	t.Run("точное совпадение месяца и года", func(t *testing.T) {
		got := FilterCalendar(all, CalendarWindow{Month: time.October, Year: 2026})
		require.Len(t, got, 2)
		assert.Contains(t, got, october)
		assert.Contains(t, got, paddle)
	})

	t.Run("фильтр по активностям", func(t *testing.T) {
		got := FilterCalendar(all, CalendarWindow{
			Month:      time.October,
			Year:       2026,
			Activities: []Activity{ActivityPaddleSurf},
		})
		require.Len(t, got, 1)
		assert.Equal(t, paddle, got[0])
	})
}

func TestFilterAgenda_InclusiveBounds(t *testing.T) {
	from := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC)

	onFrom := makeReservation(ActivityKayak, from)
	onTo := makeReservation(ActivityKayak, to)
	dayAfter := makeReservation(ActivityKayak, to.AddDate(0, 0, 1))
	dayBefore := makeReservation(ActivityKayak, from.AddDate(0, 0, -1))

	got := FilterAgenda([]*Reservation{onFrom, onTo, dayAfter, dayBefore}, AgendaWindow{From: from, To: to})

	// Обе границы включаются, соседние дни отсекаются
	require.Len(t, got, 2)
	assert.Contains(t, got, onFrom)
	assert.Contains(t, got, onTo)
}

func TestFilterAgenda_ActivitySet(t *testing.T) {
	date := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
	window := AgendaWindow{From: date, To: date}

	kayak := makeReservation(ActivityKayak, date)
	paddle := makeReservation(ActivityPaddleSurf, date)
	all := []*Reservation{kayak, paddle}

	t.Run("пустой набор означает отсутствие фильтра", func(t *testing.T) {
		got := FilterAgenda(all, window)
		assert.Len(t, got, 2)
	})

	t.Run("полный каталог эквивалентен отсутствию фильтра", func(t *testing.T) {
		window.Activities = Catalog
		got := FilterAgenda(all, window)
		assert.Len(t, got, 2)
	})

	t.Run("непустой набор отсекает остальные активности", func(t *testing.T) {
		window.Activities = []Activity{ActivityKayak}
		got := FilterAgenda(all, window)
		require.Len(t, got, 1)
		assert.Equal(t, kayak, got[0])
	})
}
