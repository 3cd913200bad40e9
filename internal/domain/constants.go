package domain

// Форматы дат и времени, в которых пишет и читает внешнее хранилище
const (
	DateFormat      = "02/01/2006"       // dd/mm/yyyy
	TimeFormat      = "15:04:05"         // HH:MM:SS
	TimeShortFormat = "15:04"            // HH:MM
	BookedAtFormat  = "02/01/2006 15:04" // dd/mm/yyyy HH:MM
)

// Способы связи с клиентом
const (
	ContactWhatsApp = "WhatsApp"
	ContactPhone    = "Teléfono"
	ContactEmail    = "Email"
)

// ContactMethods допустимые способы связи
var ContactMethods = []string{ContactWhatsApp, ContactPhone, ContactEmail}

// Ограничения на состав группы
const (
	MinPartySize = 1
	MaxPartySize = 100
	MaxBisontes  = 30 // максимум взрослых либо детей на Ruta Bisontes
)

// Отображаемые названия обязательных полей для агрегированной ошибки валидации
const (
	FieldName      = "Nombre completo"
	FieldActivity  = "Actividad"
	FieldDate      = "Fecha de actividad"
	FieldStartTime = "Hora de inicio"
	FieldDuration  = "Duración"
	FieldContact   = "Email o número de contacto"
	FieldPartySize = "Nº personas"
)
