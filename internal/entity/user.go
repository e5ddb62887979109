package entity

type User struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	IsEmailAllowed bool      `json:"is_email_allowed"`
	Location       *Location `json:"location,omitempty"`
}

// FullName is the display name used in notifications.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Location struct {
	ID         int64  `json:"id"`
	City       string `json:"city"`
	Street     string `json:"street"`
	OfficeName string `json:"office_name"`
	RoomNumber string `json:"room_number,omitempty"`
}
