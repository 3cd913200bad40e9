package domain

import "time"

// CalendarWindow окно календарного представления: точное совпадение месяца и года
// Пустой Activities означает "без фильтра по активностям"
type CalendarWindow struct {
	Month      time.Month
	Year       int
	Activities []Activity
}

// AgendaWindow окно представления повестки: диапазон дат, включительно с обеих сторон
// Пустой Activities означает "без фильтра по активностям"
type AgendaWindow struct {
	From       time.Time
	To         time.Time
	Activities []Activity
}

// FilterCalendar проецирует бронирования на окно календаря
func FilterCalendar(reservations []*Reservation, window CalendarWindow) []*Reservation {
	result := make([]*Reservation, 0)
	for _, r := range reservations {
		if !r.SameMonth(window.Month, window.Year) {
			continue
		}
		if !activityMatches(window.Activities, r.Activity) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// FilterAgenda проецирует бронирования на окно повестки
// Границы диапазона включаются: бронирование ровно на дату To попадает в выборку
func FilterAgenda(reservations []*Reservation, window AgendaWindow) []*Reservation {
	from := truncateToDay(window.From)
	to := truncateToDay(window.To)

	result := make([]*Reservation, 0)
	for _, r := range reservations {
		day := truncateToDay(r.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		if !activityMatches(window.Activities, r.Activity) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// activityMatches пустой набор трактуется как отсутствие фильтра, а не как "исключить все"
func activityMatches(set []Activity, a Activity) bool {
	if len(set) == 0 {
		return true
	}
	for _, item := range set {
		if item == a {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
