package models

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PinIssuedResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	// TestPin is only populated in degraded mode (mail unconfigured,
	// non-production environment).
	TestPin string `json:"testPin,omitempty"`
}

type VerifiedResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type OrderPlacedResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type Analytics struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}
