package domain

// Activity название активности из каталога
type Activity string

// Каталог активностей оператора
const (
	ActivityKayak          Activity = "Kayak"
	ActivityPaddleSurf     Activity = "Paddle surf"
	ActivityHidropedales   Activity = "Hidropedales"
	ActivityRutaBisontes   Activity = "Ruta Bisontes"
	ActivityEbikes         Activity = "Ebikes"
	ActivityFerrataCist    Activity = "Ferrata Cistierna"
	ActivityFerrataSabero  Activity = "Ferrata Sabero"
	ActivityFerrataValdeon Activity = "Ferrata Valdeón"
	ActivityFerrataRental  Activity = "Alquiler equipos ferrata"
	ActivityGrupos         Activity = "Grupos"
	ActivitySenderismo     Activity = "Senderismo"
)

// Catalog полный список активностей в порядке отображения
var Catalog = []Activity{
	ActivityKayak,
	ActivityPaddleSurf,
	ActivityHidropedales,
	ActivityRutaBisontes,
	ActivityEbikes,
	ActivityFerrataCist,
	ActivityFerrataSabero,
	ActivityFerrataValdeon,
	ActivityFerrataRental,
	ActivityGrupos,
	ActivitySenderismo,
}

// ManualPriceActivities активности без каталожного тарифа:
// цена за человека вводится оператором при бронировании
var ManualPriceActivities = []Activity{ActivityGrupos, ActivitySenderismo}

// Варианты длительности
var (
	// RentalDurations длительности для аренды снаряжения (в днях)
	RentalDurations = []string{"1 día", "2 días", "3 días"}

	// StandardDurations длительности для остальных активностей
	StandardDurations = []string{"1 hora", "2 horas", "Medio día", "Todo el día"}
)

// CalendarColors цвет события в календаре по активности
var CalendarColors = map[Activity]string{
	ActivityKayak:          "#FF6B6B",
	ActivityPaddleSurf:     "#4ECDC4",
	ActivityHidropedales:   "#FFD166",
	ActivityRutaBisontes:   "#06D6A0",
	ActivityEbikes:         "#118AB2",
	ActivityFerrataCist:    "#073B4C",
	ActivityFerrataSabero:  "#EF476F",
	ActivityFerrataValdeon: "#7209B7",
	ActivityFerrataRental:  "#F15BB5",
	ActivityGrupos:         "#9B5DE5",
	ActivitySenderismo:     "#00BBF9",
}

// DefaultCalendarColor цвет для активностей вне каталога
const DefaultCalendarColor = "#CCCCCC"

// IsKnown проверяет, что активность есть в каталоге
func (a Activity) IsKnown() bool {
	for _, known := range Catalog {
		if a == known {
			return true
		}
	}
	return false
}

// IsManualPrice проверяет, что цена за человека вводится оператором вручную
func (a Activity) IsManualPrice() bool {
	for _, manual := range ManualPriceActivities {
		if a == manual {
			return true
		}
	}
	return false
}

// IsBisontes активность с раздельным тарифом взрослые/дети
func (a Activity) IsBisontes() bool {
	return a == ActivityRutaBisontes
}

// IsFerrataRental аренда снаряжения для феррат (тариф за день)
func (a Activity) IsFerrataRental() bool {
	return a == ActivityFerrataRental
}

// DurationOptions допустимые длительности для активности
func (a Activity) DurationOptions() []string {
	if a.IsFerrataRental() {
		return RentalDurations
	}
	return StandardDurations
}

// Color цвет события в календаре
func (a Activity) Color() string {
	if color, ok := CalendarColors[a]; ok {
		return color
	}
	return DefaultCalendarColor
}
