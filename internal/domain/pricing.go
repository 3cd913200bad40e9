package domain

import (
	"math"
	"strconv"
	"strings"
)

// Тарифы каталога
const (
	FerrataGuidedRate     = 49.0 // за человека, любая феррата с гидом
	FerrataRentalDayRate  = 15.0 // за день аренды за человека
	BisontesAdultRate     = 59.0
	BisontesChildRate     = 49.0
)

// tariffs каталожные тарифы по активности и длительности
// Hidropedales - цена за судно на слот, не умножается на число людей
var tariffs = map[Activity]map[string]float64{
	ActivityKayak: {
		"1 hora":      10,
		"2 horas":     18,
		"Todo el día": 30,
	},
	ActivityPaddleSurf: {
		"1 hora":      15,
		"2 horas":     25,
		"Todo el día": 30,
	},
	ActivityHidropedales: {
		"1 hora":  30,
		"2 horas": 50,
	},
	ActivityEbikes: {
		"1 hora":      15,
		"Medio día":   30,
		"Todo el día": 50,
	},
}

// QuoteInput входные данные расчета рекомендованной цены
type QuoteInput struct {
	Activity        Activity
	Duration        string
	PartySize       int
	ManualUnitPrice float64 // только для активностей с ручным тарифом
	Adults          int     // только для Ruta Bisontes
	Children        int     // только для Ruta Bisontes
}

// Quote считает рекомендованную цену бронирования
// Неизвестные сочетания активность/длительность дают 0, а не ошибку:
// цена всегда редактируется оператором, нулевая подсказка допустима
func Quote(in QuoteInput) float64 {
	switch {
	case in.Activity.IsManualPrice():
		return in.ManualUnitPrice * float64(in.PartySize)

	case strings.Contains(string(in.Activity), "Ferrata") && !in.Activity.IsFerrataRental():
		return FerrataGuidedRate * float64(in.PartySize)

	case in.Activity.IsFerrataRental():
		return FerrataRentalDayRate * float64(leadingInt(in.Duration)) * float64(in.PartySize)

	case in.Activity.IsBisontes():
		return BisontesAdultRate*float64(in.Adults) + BisontesChildRate*float64(in.Children)

	case in.Activity == ActivityHidropedales:
		return tariffs[ActivityHidropedales][in.Duration]

	default:
		return tariffs[in.Activity][in.Duration] * float64(in.PartySize)
	}
}

// UnitPrice считает цену за единицу при сохранении бронирования
// Hidropedales: за час аренды; ручной тариф: введенная оператором ставка;
// остальные: итоговая цена на человека. Деление на ноль дает 0
func UnitPrice(activity Activity, duration string, finalPrice float64, partySize int, manualUnitPrice float64) float64 {
	switch {
	case activity == ActivityHidropedales:
		hours := leadingInt(duration)
		if hours <= 0 {
			return 0
		}
		return round2(finalPrice / float64(hours))

	case activity.IsManualPrice():
		return round2(manualUnitPrice)

	default:
		if partySize <= 0 {
			return 0
		}
		return round2(finalPrice / float64(partySize))
	}
}

// leadingInt извлекает ведущее число из метки длительности ("2 días" -> 2)
// Метки без числа ("Medio día", "Todo el día") дают 0
func leadingInt(label string) int {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
