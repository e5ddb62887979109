package entity

import "time"

// Wish is keyed by (UserID, BookID). User and Book are filled only
// when the store was asked to expand them.
type Wish struct {
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty"`
	Book *Book `json:"book,omitempty"`
}

type WishAvailableNotification struct {
	BatchID        string `json:"batch_id"`
	UserID         int64  `json:"user_id"`
	RecipientName  string `json:"recipient_name"`
	BookID         int64  `json:"book_id"`
	BookTitle      string `json:"book_title"`
	RecipientEmail string `json:"recipient_email"`
}
