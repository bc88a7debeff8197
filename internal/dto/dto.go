package dto

type CreateOrderRequest struct {
	PlanID   string  `json:"planId"`
	Amount   float64 `json:"amount"` // major currency units
	Currency string  `json:"currency"`
	UserID   string  `json:"userId"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	UserID    string `json:"userId"`
	PlanID    string `json:"planId"`
}

type VerifyResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	SubscriptionID string          `json:"subscriptionId,omitempty"`
	Payment        *PaymentDetails `json:"payment,omitempty"`
}

type PaymentDetails struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"` // major currency units
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
	Method   string  `json:"method"`
	Email    string  `json:"email"`
	Contact  string  `json:"contact"`
}

type HealthResponse struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	Timestamp          string `json:"timestamp"`
	RazorpayConfigured bool   `json:"razorpayConfigured"`
}

type Plan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"` // major currency units
	Currency string  `json:"currency"`
}
