package domain

import "time"

// Варианты поля "пол" клиента
var CustomerSexOptions = []string{"Masculino", "Femenino", "Otro", "Prefiero no decirlo"}

// Customer демографическая запись клиента для отчетности
// Хранится отдельным листом, в ядро бронирований не влияет
type Customer struct {
	ExternalID   string
	Sex          string
	BirthDate    time.Time
	City         string
	Country      string
	Activity     Activity
	ActivityDate time.Time
	StartTime    string
	Duration     string
	PartySize    int
	Price        float64
	RegisteredAt time.Time
	Notes        string
}

// Age возраст клиента в полных годах на момент now
func (c *Customer) Age(now time.Time) int {
	if c.BirthDate.IsZero() {
		return 0
	}
	return int(now.Sub(c.BirthDate).Hours() / 24 / 365)
}

// RevenuePerPerson выручка на человека; нулевая группа дает 0
func (c *Customer) RevenuePerPerson() float64 {
	if c.PartySize <= 0 {
		return 0
	}
	return c.Price / float64(c.PartySize)
}

// AgeGroup группа возраста для демографических отчетов
func AgeGroup(age int) string {
	switch {
	case age < 18:
		return "<18"
	case age <= 30:
		return "18-30"
	case age <= 45:
		return "31-45"
	case age <= 60:
		return "46-60"
	default:
		return ">60"
	}
}
