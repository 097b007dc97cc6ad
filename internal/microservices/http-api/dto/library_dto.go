package dto

// AddToBookshelfRequest: payload to shelve a novel
type AddToBookshelfRequest struct {
	UserID  int64 `json:"user_id"`
	NovelID int64 `json:"novel_id"`
}

// RemoveFromBookshelfRequest: novel_ids must be a JSON array
type RemoveFromBookshelfRequest struct {
	UserID   int64   `json:"user_id"`
	NovelIDs []int64 `json:"novel_ids"`
}

// RewardRequest: spend monthly tickets on a novel
type RewardRequest struct {
	UserID  int64 `json:"user_id"`
	NovelID int64 `json:"novel_id"`
	Tickets int64 `json:"tickets"`
}

// RewardResponse: result of a committed reward
type RewardResponse struct {
	Message          string `json:"message"`
	RemainingTickets int64  `json:"remaining_tickets"`
	Shelved          bool   `json:"shelved"`
}

// MessageResponse: generic success body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse: the one error body every route uses
type ErrorResponse struct {
	Error string `json:"error"`
}
