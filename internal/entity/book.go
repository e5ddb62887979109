package entity

import "time"

type Book struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Publisher string    `json:"publisher,omitempty"`
	Available bool      `json:"available"`
	Language  *Language `json:"language,omitempty"`
	Authors   []Author  `json:"authors,omitempty"`
	Genres    []Genre   `json:"genres,omitempty"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
