package model

// Task is a todo entry.
type Task struct {
	Title string `json:"title"`
}
