package model

// Task is a single todo card.
type Task struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Project string `json:"project"`
}
