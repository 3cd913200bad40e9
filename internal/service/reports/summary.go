package reports

import (
	"sort"
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/service/reports/models"
)

// buildSummary строит агрегаты из реестра клиентов
// Записи с неправдоподобным возрастом (вне 1..119 лет) исключаются из
// демографических разрезов, но участвуют в выручке и временных разрезах
func buildSummary(customers []*domain.Customer, now time.Time) *models.Summary {
	summary := &models.Summary{
		TotalCustomers: len(customers),
		ByActivity:     make([]models.ActivityStat, 0),
		ByMonth:        make([]models.MonthStat, 0),
		ByWeekday:      make([]models.WeekdayStat, 0),
		ByHour:         make([]models.HourStat, 0),
		BySex:          make([]models.CountStat, 0),
		ByAgeGroup:     make([]models.CountStat, 0),
	}

	byActivity := make(map[string]*models.ActivityStat)
	byMonth := make(map[[2]int]*models.MonthStat)
	byWeekday := make(map[int]*models.WeekdayStat)
	byHour := make(map[int]int)
	bySex := make(map[string]int)
	byAgeGroup := make(map[string]int)

	var revenuePerPersonSum float64
	var revenuePerPersonCount int

	for _, c := range customers {
		summary.TotalRevenue += c.Price

		if stat, ok := byActivity[string(c.Activity)]; ok {
			stat.Reservations++
			stat.Revenue += c.Price
		} else {
			byActivity[string(c.Activity)] = &models.ActivityStat{
				Activity:     string(c.Activity),
				Reservations: 1,
				Revenue:      c.Price,
			}
		}

		if !c.ActivityDate.IsZero() {
			monthKey := [2]int{c.ActivityDate.Year(), int(c.ActivityDate.Month())}
			if stat, ok := byMonth[monthKey]; ok {
				stat.Reservations++
				stat.Revenue += c.Price
			} else {
				byMonth[monthKey] = &models.MonthStat{
					Year:         monthKey[0],
					Month:        monthKey[1],
					Reservations: 1,
					Revenue:      c.Price,
				}
			}

			weekday := int(c.ActivityDate.Weekday())
			if stat, ok := byWeekday[weekday]; ok {
				stat.Reservations++
				stat.Revenue += c.Price
			} else {
				byWeekday[weekday] = &models.WeekdayStat{
					Weekday:      weekday,
					Reservations: 1,
					Revenue:      c.Price,
				}
			}
		}

		if hour, ok := parseHour(c.StartTime); ok {
			byHour[hour]++
		}

		if c.PartySize > 0 {
			revenuePerPersonSum += c.RevenuePerPerson()
			revenuePerPersonCount++
		}

		// Демографические разрезы только по правдоподобным возрастам
		age := c.Age(now)
		if age > 0 && age < 120 {
			bySex[c.Sex]++
			byAgeGroup[domain.AgeGroup(age)]++
		}
	}

	if revenuePerPersonCount > 0 {
		summary.AvgRevenuePerPerson = revenuePerPersonSum / float64(revenuePerPersonCount)
	}

	for _, stat := range byActivity {
		summary.ByActivity = append(summary.ByActivity, *stat)
	}
	sort.Slice(summary.ByActivity, func(i, j int) bool {
		return summary.ByActivity[i].Revenue > summary.ByActivity[j].Revenue
	})

	for _, stat := range byMonth {
		summary.ByMonth = append(summary.ByMonth, *stat)
	}
	sort.Slice(summary.ByMonth, func(i, j int) bool {
		if summary.ByMonth[i].Year != summary.ByMonth[j].Year {
			return summary.ByMonth[i].Year < summary.ByMonth[j].Year
		}
		return summary.ByMonth[i].Month < summary.ByMonth[j].Month
	})

	for _, stat := range byWeekday {
		summary.ByWeekday = append(summary.ByWeekday, *stat)
	}
	sort.Slice(summary.ByWeekday, func(i, j int) bool {
		return summary.ByWeekday[i].Weekday < summary.ByWeekday[j].Weekday
	})

	for hour, count := range byHour {
		summary.ByHour = append(summary.ByHour, models.HourStat{Hour: hour, Reservations: count})
	}
	sort.Slice(summary.ByHour, func(i, j int) bool {
		return summary.ByHour[i].Hour < summary.ByHour[j].Hour
	})

	for label, count := range bySex {
		summary.BySex = append(summary.BySex, models.CountStat{Label: label, Count: count})
	}
	sort.Slice(summary.BySex, func(i, j int) bool {
		return summary.BySex[i].Label < summary.BySex[j].Label
	})

	for label, count := range byAgeGroup {
		summary.ByAgeGroup = append(summary.ByAgeGroup, models.CountStat{Label: label, Count: count})
	}
	sort.Slice(summary.ByAgeGroup, func(i, j int) bool {
		return summary.ByAgeGroup[i].Label < summary.ByAgeGroup[j].Label
	})

	return summary
}

// parseHour извлекает час из строки времени "HH:MM" или "HH:MM:SS"
func parseHour(s string) (int, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), true
		}
	}
	return 0, false
}
