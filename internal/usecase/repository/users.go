package repository

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/samber/lo"
)

// userColumns selects a user joined with its (optional) location.
func userColumns(user, location string) []any {
	return []any{
		goqu.I(user + ".first_name"),
		goqu.I(user + ".last_name"),
		goqu.I(user + ".email"),
		goqu.I(user + ".is_email_allowed"),
		goqu.I(location + ".id"),
		goqu.I(location + ".city"),
		goqu.I(location + ".street"),
		goqu.I(location + ".office_name"),
		goqu.I(location + ".room_number"),
	}
}

type userRow struct {
	user entity.User

	locationID *int64
	city       *string
	street     *string
	officeName *string
	roomNumber *string
}

func (u *userRow) targets() []any {
	return []any{
		&u.user.FirstName,
		&u.user.LastName,
		&u.user.Email,
		&u.user.IsEmailAllowed,
		&u.locationID,
		&u.city,
		&u.street,
		&u.officeName,
		&u.roomNumber,
	}
}

func (u *userRow) toEntity(id int64) *entity.User {
	user := u.user
	user.ID = id
	if u.locationID != nil {
		user.Location = &entity.Location{
			ID:         *u.locationID,
			City:       lo.FromPtr(u.city),
			Street:     lo.FromPtr(u.street),
			OfficeName: lo.FromPtr(u.officeName),
			RoomNumber: lo.FromPtr(u.roomNumber),
		}
	}
	return &user
}
