package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

var (
	ErrBookNotFound    = fmt.Errorf("book %w", ErrNotFound)
	ErrRequestNotFound = fmt.Errorf("request %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	ErrOwnBookWish       = fmt.Errorf("%w: user cannot add own book to wish list", ErrInvalidOperation)
	ErrWishAlreadyExists = fmt.Errorf("%w: book is already in wish list", ErrInvalidOperation)
	ErrWishNotFound      = fmt.Errorf("%w: book is not in wish list", ErrInvalidOperation)
)
