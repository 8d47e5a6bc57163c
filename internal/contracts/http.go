package contracts

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorPayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Status string       `json:"status"`
	Error  ErrorPayload `json:"error"`
}

// AccountResponse renders balances as fixed-point decimal strings so no
// precision is lost at the JSON boundary.
type AccountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

type TransactionResponse struct {
	Tx           uint32 `json:"tx"`
	Client       uint16 `json:"client"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	DisputeState string `json:"dispute_state"`
}
