package models

// Symptom — элемент справочника симптомов. Справочник заполняется
// миграциями и доступен системе только на чтение.
type Symptom struct {
	ID   int    `json:"symptom_id"`
	Name string `json:"name"`
}
