package lending

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
)

type (
	MakeRequestRequest struct {
		BookID int64 `json:"book_id"`
	}

	GetRequestsRequest struct {
		BookID   int64 `json:"book_id"`
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
	}

	ApproveRequestRequest struct {
		RequestID int64 `json:"request_id"`
	}

	RemoveRequestRequest struct {
		RequestID int64 `json:"request_id"`
	}

	RequestResponse struct {
		Request entity.Request `json:"request"`
	}

	GetRequestsResponse struct {
		pagination.Page[entity.Request]
	}

	// WishRequest addresses the caller's wish on one book. AddWish,
	// RemoveWish and CheckWish share it.
	WishRequest struct {
		BookID int64 `json:"book_id"`
	}

	WishResponse struct{}

	CheckWishResponse struct {
		InWishList bool `json:"in_wish_list"`
	}

	GetWishesRequest struct {
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	}

	GetWishesResponse struct {
		pagination.Page[entity.Book]
	}

	NotifyAvailableRequest struct {
		BookID int64 `json:"book_id"`
	}

	NotifyAvailableResponse struct{}
)

func idRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.Min(int64(1))}
}

func pageRules() []validation.Rule {
	return []validation.Rule{validation.Min(0), validation.Max(pagination.MaxPage)}
}

func pageSizeRules() []validation.Rule {
	return []validation.Rule{validation.Min(0), validation.Max(pagination.MaxPageSize)}
}

func (r *MakeRequestRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BookID, idRules()...),
	)
}

func (r *GetRequestsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BookID, idRules()...),
		validation.Field(&r.Page, pageRules()...),
		validation.Field(&r.PageSize, pageSizeRules()...),
	)
}

// Params returns the page selection with defaults filled in.
func (r *GetRequestsRequest) Params() pagination.Params {
	return pagination.Params{Page: r.Page, PageSize: r.PageSize}.WithDefaults()
}

func (r *ApproveRequestRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RequestID, idRules()...),
	)
}

func (r *RemoveRequestRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.RequestID, idRules()...),
	)
}

func (r *WishRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BookID, idRules()...),
	)
}

func (r *GetWishesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Page, pageRules()...),
		validation.Field(&r.PageSize, pageSizeRules()...),
	)
}

func (r *GetWishesRequest) Params() pagination.Params {
	return pagination.Params{Page: r.Page, PageSize: r.PageSize}.WithDefaults()
}

func (r *NotifyAvailableRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BookID, idRules()...),
	)
}
