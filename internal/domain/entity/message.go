package entity

import "time"

// Message one question/answer exchange with the catalog assistant
type Message struct {
	ID        string
	UserID    int64
	Username  string
	Text      string
	Response  string
	Timestamp time.Time
}
