package schedule

type CreateBlockRequest struct {
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	StartTime string `json:"start_time"`              // "HH:MM", empty for full-day
	EndTime   string `json:"end_time"`
	IsFullDay bool   `json:"is_full_day"`
	IsUnblock bool   `json:"is_unblock"`
	Reason    string `json:"reason"`
}
