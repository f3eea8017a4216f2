package entity

// PriceTable maps a ticket category to its per-ticket price in whole pounds.
// It is read-only once built.
type PriceTable struct {
	prices map[TicketCategory]int
}

// StandardPrices is the process-wide price list.
var StandardPrices = NewPriceTable(map[TicketCategory]int{
	TicketCategoryAdult:  20,
	TicketCategoryChild:  10,
	TicketCategoryInfant: 0,
})

// NewPriceTable copies prices so later changes to the argument are not observed.
func NewPriceTable(prices map[TicketCategory]int) PriceTable {
	cp := make(map[TicketCategory]int, len(prices))
	for c, p := range prices {
		cp[c] = p
	}
	return PriceTable{prices: cp}
}

func (t PriceTable) Price(c TicketCategory) (int, bool) {
	p, ok := t.prices[c]
	return p, ok
}
