package sheetstore

// Row одна строка листа: значения ячеек в фиксированном позиционном порядке
type Row []string

// readAllResponse ответ хранилища на чтение листа
type readAllResponse struct {
	Rows []Row `json:"rows"`
}

// appendRequest запрос на дописывание строки в конец листа
type appendRequest struct {
	Values Row `json:"values"`
}

// insertRequest запрос на вставку строки на указанную позицию
type insertRequest struct {
	Values Row `json:"values"`
}

// errorResponse модель ошибки от хранилища
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
