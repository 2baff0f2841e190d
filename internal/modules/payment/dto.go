package payment

type ConfirmPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
	Succeeded bool   `json:"succeeded"`
}
