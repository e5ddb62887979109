package entity

import "time"

// Request is a user's ask to borrow a book from its current holder.
// It is pending until ReceiveDate is set by an approval.
type Request struct {
	ID          int64      `json:"id"`
	BookID      int64      `json:"book_id"`
	OwnerID     int64      `json:"owner_id"`
	RequesterID int64      `json:"requester_id"`
	RequestDate time.Time  `json:"request_date"`
	ReceiveDate *time.Time `json:"receive_date,omitempty"`

	Book      *Book `json:"book,omitempty"`
	Owner     *User `json:"owner,omitempty"`
	Requester *User `json:"requester,omitempty"`
}

func (r Request) IsApproved() bool {
	return r.ReceiveDate != nil
}

// RequestEvent is the outbox payload sent when a request is made or approved.
type RequestEvent struct {
	RequestID   int64     `json:"request_id"`
	BookID      int64     `json:"book_id"`
	OwnerID     int64     `json:"owner_id"`
	RequesterID int64     `json:"requester_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewRequestEvent(r Request, at time.Time) RequestEvent {
	return RequestEvent{
		RequestID:   r.ID,
		BookID:      r.BookID,
		OwnerID:     r.OwnerID,
		RequesterID: r.RequesterID,
		OccurredAt:  at,
	}
}
