package entity

// SeatReservation is a block of seats held by the seat booking service.
type SeatReservation struct {
	BaseSimple
	Reference string `db:"reference"`
	AccountID int64  `db:"account_id"`
	SeatCount int    `db:"seat_count"`
}
