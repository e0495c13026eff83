package pricing

// Gateway charges a card and returns a transaction id. Implementations are
// supplied by the caller; tests use fakes.
type Gateway interface {
	Charge(cardNumber string, amount float64, currency string) (string, error)
}

// Request describes one payment attempt.
type Request struct {
	CardNumber string
	Amount     float64
	Currency   string
}

// Result is the outcome of a payment attempt. Gateway failures come back
// as failed Results with a Reason, not as errors.
type Result struct {
	OK            bool
	TransactionID string
	Amount        float64
	Reason        string
}

// Processor runs payments through a Gateway.
type Processor struct {
	gateway Gateway
}

// NewProcessor returns a Processor charging through the given gateway.
func NewProcessor(gateway Gateway) *Processor {
	return &Processor{gateway: gateway}
}

// Process validates the request and charges the gateway. Invalid amounts
// and malformed card numbers fail before the gateway is called.
func (p *Processor) Process(req Request) Result {
	if req.Amount <= 0 {
		return Result{Reason: "invalid payment amount"}
	}
	if !validCardNumber(req.CardNumber) {
		return Result{Reason: "invalid card number"}
	}

	txID, err := p.gateway.Charge(req.CardNumber, req.Amount, req.Currency)
	if err != nil {
		return Result{Reason: "payment failed: " + err.Error()}
	}
	return Result{OK: true, TransactionID: txID, Amount: req.Amount}
}

// validCardNumber is a length-and-digits check, standing in for a real
// Luhn validation.
func validCardNumber(cardNumber string) bool {
	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}
	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
