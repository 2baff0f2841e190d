package settings

type UpdateSettingsRequest struct {
	OpeningTime             string  `json:"opening_time" binding:"required"`
	ClosingTime             string  `json:"closing_time" binding:"required"`
	OpenDays                []int   `json:"open_days" binding:"required,min=1"`
	VATRate                 float64 `json:"vat_rate"`
	CommissionRate          float64 `json:"commission_rate"`
	NightStartTime          string  `json:"night_start_time" binding:"required"`
	NightEndTime            string  `json:"night_end_time" binding:"required"`
	NightSurchargePercent   float64 `json:"night_surcharge_percent"`
	WeekendSurchargePercent float64 `json:"weekend_surcharge_percent"`
	ReminderHoursBefore     int     `json:"reminder_hours_before"`
}
