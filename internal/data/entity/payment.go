package entity

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is a charge recorded by the payment gateway.
type Payment struct {
	BaseSimple
	Reference string        `db:"reference"`
	AccountID int64         `db:"account_id"`
	Amount    int           `db:"amount"`
	Status    PaymentStatus `db:"status"`
}
