package models

// Stats - агрегированные счетчики NGO, пересчитываются на стороне бэкенда
type Stats struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}
