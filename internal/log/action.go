package log

type Action = string

const (
	MakeRequest     Action = "MakeRequest"
	GetRequests            = "GetRequests"
	ApproveRequest         = "ApproveRequest"
	RemoveRequest          = "RemoveRequest"
	AddWish                = "AddWish"
	RemoveWish             = "RemoveWish"
	CheckWish              = "CheckWish"
	GetWishes              = "GetWishes"
	NotifyAvailable        = "NotifyAvailable"
)
