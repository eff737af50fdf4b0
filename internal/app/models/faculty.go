package models

// Faculty represents an organizational affiliation (academic faculty)
type Faculty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
