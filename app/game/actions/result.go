package actions

// Result is the structured outcome of a space action. Business-rule failures
// (unpayable rent, unconfigured tax) come back as Success=false with the state
// untouched; they are expected outcomes, not errors.
type Result struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message"`
	CashChange    float64                `json:"cashChange"`
	CryptoChanges map[string]float64     `json:"cryptoChanges"`
	PlayerMoved   bool                   `json:"playerMoved"`
	NewPosition   *int                   `json:"newPosition"`
	Data          map[string]interface{} `json:"additionalData"`
}

func ok(message string, cashChange float64, data map[string]interface{}) Result {
	return Result{Success: true, Message: message, CashChange: cashChange, Data: data}
}

func fail(message string) Result {
	return Result{Success: false, Message: message}
}

func move(message string, newPosition int) Result {
	return Result{Success: true, Message: message, PlayerMoved: true, NewPosition: &newPosition}
}
