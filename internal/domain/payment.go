package domain

// PaymentMethod how a booking was paid
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "Card"
)

// IsValid reports whether m is one of the fixed methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard:
		return true
	}
	return false
}

// PaymentStatus whether the booking has been paid
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// IsValid reports whether s is Paid or Unpaid
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPaid || s == PaymentUnpaid
}

// Payment is embedded in every booking. Amount and Method only count once Status is Paid.
type Payment struct {
	Amount float64
	Method *PaymentMethod
	Status PaymentStatus
}

// NewUnpaidPayment is the payment a freshly created booking starts with
func NewUnpaidPayment(amount float64) Payment {
	return Payment{Amount: amount, Status: PaymentUnpaid}
}

// IsPaid returns true if the payment has been collected
func (p Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}

// Validate checks a payment submitted through the payment form
func (p Payment) Validate() error {
	verr := NewValidationError()

	if p.Amount <= 0 {
		verr.Add("amount", "amount must be positive")
	}
	if p.Method == nil {
		verr.Add("method", "payment method is required")
	} else if !p.Method.IsValid() {
		verr.Add("method", "payment method must be one of Cash, UPI, Card")
	}
	if !p.Status.IsValid() {
		verr.Add("status", "payment status must be Paid or Unpaid")
	}

	return verr.ErrOrNil()
}
