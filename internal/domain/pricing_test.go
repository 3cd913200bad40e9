package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_CatalogTariffs(t *testing.T) {
	tests := []struct {
		name     string
		input    QuoteInput
		expected float64
	}{
		{
			name:     "kayak 1 hora умножается на число людей",
			input:    QuoteInput{Activity: ActivityKayak, Duration: "1 hora", PartySize: 4},
			expected: 40,
		},
		{
			name:     "kayak todo el día",
			input:    QuoteInput{Activity: ActivityKayak, Duration: "Todo el día", PartySize: 2},
			expected: 60,
		},
		{
			name:     "paddle surf 2 horas",
			input:    QuoteInput{Activity: ActivityPaddleSurf, Duration: "2 horas", PartySize: 3},
			expected: 75,
		},
		{
			name:     "ebikes medio día",
			input:    QuoteInput{Activity: ActivityEbikes, Duration: "Medio día", PartySize: 2},
			expected: 60,
		},
		{
			name:     "нулевая группа дает ноль",
			input:    QuoteInput{Activity: ActivityKayak, Duration: "1 hora", PartySize: 0},
			expected: 0,
		},
		{
			name:     "неизвестная длительность дает ноль, а не ошибку",
			input:    QuoteInput{Activity: ActivityKayak, Duration: "3 horas", PartySize: 5},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.input))
		})
	}
}

func TestQuote_Hidropedales(t *testing.T) {
	// Цена за судно на слот, число людей не участвует
	price := Quote(QuoteInput{Activity: ActivityHidropedales, Duration: "1 hora", PartySize: 4})
	assert.Equal(t, 30.0, price)

	price = Quote(QuoteInput{Activity: ActivityHidropedales, Duration: "2 horas", PartySize: 1})
	assert.Equal(t, 50.0, price)
}

func TestQuote_ManualPriceActivities(t *testing.T) {
	price := Quote(QuoteInput{Activity: ActivityGrupos, Duration: "Todo el día", PartySize: 10, ManualUnitPrice: 10})
	assert.Equal(t, 100.0, price)

	price = Quote(QuoteInput{Activity: ActivitySenderismo, Duration: "Medio día", PartySize: 5, ManualUnitPrice: 12.5})
	assert.Equal(t, 62.5, price)

	// Без введенной ставки подсказка нулевая
	price = Quote(QuoteInput{Activity: ActivityGrupos, Duration: "1 hora", PartySize: 5})
	assert.Equal(t, 0.0, price)
}

func TestQuote_FerrataGuided(t *testing.T) {
	// Любая феррата с гидом: фиксированная ставка за человека
	price := Quote(QuoteInput{Activity: ActivityFerrataSabero, Duration: "Medio día", PartySize: 3})
	assert.Equal(t, 147.0, price)

	price = Quote(QuoteInput{Activity: ActivityFerrataValdeon, Duration: "Todo el día", PartySize: 2})
	assert.Equal(t, 98.0, price)
}

func TestQuote_FerrataRental(t *testing.T) {
	// Аренда: ставка за день за человека, число дней из метки длительности
	price := Quote(QuoteInput{Activity: ActivityFerrataRental, Duration: "2 días", PartySize: 4})
	assert.Equal(t, 120.0, price)

	price = Quote(QuoteInput{Activity: ActivityFerrataRental, Duration: "1 día", PartySize: 1})
	assert.Equal(t, 15.0, price)

	// Метка без ведущего числа дает ноль дней
	price = Quote(QuoteInput{Activity: ActivityFerrataRental, Duration: "Medio día", PartySize: 4})
	assert.Equal(t, 0.0, price)
}

func TestQuote_Bisontes(t *testing.T) {
	// Взрослые и дети тарифицируются раздельно
	price := Quote(QuoteInput{Activity: ActivityRutaBisontes, Adults: 2, Children: 1})
	assert.Equal(t, 167.0, price)

	price = Quote(QuoteInput{Activity: ActivityRutaBisontes, Adults: 0, Children: 2})
	assert.Equal(t, 98.0, price)
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name            string
		activity        Activity
		duration        string
		finalPrice      float64
		partySize       int
		manualUnitPrice float64
		expected        float64
	}{
		{
			name:       "обычная активность: итог на человека",
			activity:   ActivityKayak,
			duration:   "1 hora",
			finalPrice: 40,
			partySize:  4,
			expected:   10,
		},
		{
			name:       "hidropedales: итог на час аренды, не на человека",
			activity:   ActivityHidropedales,
			duration:   "2 horas",
			finalPrice: 60,
			partySize:  4,
			expected:   30,
		},
		{
			name:       "hidropedales без ведущего числа в длительности дает ноль",
			activity:   ActivityHidropedales,
			duration:   "Medio día",
			finalPrice: 60,
			partySize:  2,
			expected:   0,
		},
		{
			name:            "ручной тариф: введенная ставка как есть",
			activity:        ActivityGrupos,
			duration:        "Todo el día",
			finalPrice:      500,
			partySize:       10,
			manualUnitPrice: 12,
			expected:        12,
		},
		{
			name:       "деление на ноль дает ноль",
			activity:   ActivityKayak,
			duration:   "1 hora",
			finalPrice: 40,
			partySize:  0,
			expected:   0,
		},
		{
			name:       "округление до двух знаков",
			activity:   ActivityKayak,
			duration:   "1 hora",
			finalPrice: 100,
			partySize:  3,
			expected:   33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitPrice(tt.activity, tt.duration, tt.finalPrice, tt.partySize, tt.manualUnitPrice)
			assert.Equal(t, tt.expected, got)
		})
	}
}
