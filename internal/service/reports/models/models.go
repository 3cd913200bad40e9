package models

// Summary табличный набор данных для внешнего рендера отчетов
// Сервис только считает агрегаты, визуализация - забота потребителя
type Summary struct {
	TotalCustomers      int     `json:"totalCustomers"`
	TotalRevenue        float64 `json:"totalRevenue"`
	AvgRevenuePerPerson float64 `json:"avgRevenuePerPerson"`

	ByActivity []ActivityStat `json:"byActivity"`
	ByMonth    []MonthStat    `json:"byMonth"`
	ByWeekday  []WeekdayStat  `json:"byWeekday"`
	ByHour     []HourStat     `json:"byHour"`
	BySex      []CountStat    `json:"bySex"`
	ByAgeGroup []CountStat    `json:"byAgeGroup"`
}

// ActivityStat агрегат по активности
type ActivityStat struct {
	Activity     string  `json:"activity"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

// MonthStat агрегат по календарному месяцу
type MonthStat struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

// WeekdayStat агрегат по дню недели (0 = воскресенье, как в time.Weekday)
type WeekdayStat struct {
	Weekday      int     `json:"weekday"`
	Reservations int     `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

// HourStat агрегат по часу начала активности
type HourStat struct {
	Hour         int `json:"hour"`
	Reservations int `json:"reservations"`
}

// CountStat счетчик по категории
type CountStat struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
