package entity

import (
	"fmt"
	"strings"
)

type TicketCategory string

const (
	TicketCategoryAdult  TicketCategory = "ADULT"
	TicketCategoryChild  TicketCategory = "CHILD"
	TicketCategoryInfant TicketCategory = "INFANT"
)

// TicketCategories lists every supported category in price-list order.
var TicketCategories = []TicketCategory{
	TicketCategoryAdult,
	TicketCategoryChild,
	TicketCategoryInfant,
}

func (c TicketCategory) Valid() bool {
	switch c {
	case TicketCategoryAdult, TicketCategoryChild, TicketCategoryInfant:
		return true
	default:
		return false
	}
}

// RequiresAdult reports whether tickets of this category can only be bought alongside an adult.
func (c TicketCategory) RequiresAdult() bool {
	return c == TicketCategoryChild || c == TicketCategoryInfant
}

// ParseTicketCategory accepts the category name in any letter case.
func ParseTicketCategory(s string) (TicketCategory, error) {
	c := TicketCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unsupported ticket type: %q", s)
	}
	return c, nil
}

// TicketRequest is an immutable {category, count} pair. Use NewTicketRequest to build one;
// the zero value is not a well-formed request.
type TicketRequest struct {
	category TicketCategory
	count    int
}

func NewTicketRequest(category TicketCategory, count int) (TicketRequest, error) {
	if !category.Valid() {
		return TicketRequest{}, fmt.Errorf("unsupported ticket type: %q", string(category))
	}
	if count < 0 {
		return TicketRequest{}, fmt.Errorf("number of %s tickets must not be negative, got %d", category, count)
	}

	return TicketRequest{category: category, count: count}, nil
}

// MustTicketRequest is NewTicketRequest for literals known to be valid.
func MustTicketRequest(category TicketCategory, count int) TicketRequest {
	req, err := NewTicketRequest(category, count)
	if err != nil {
		panic(err)
	}
	return req
}

func (r TicketRequest) Category() TicketCategory { return r.category }

func (r TicketRequest) Count() int { return r.count }

// WellFormed is false for the zero value and for values not produced by NewTicketRequest.
func (r TicketRequest) WellFormed() bool {
	return r.category.Valid() && r.count >= 0
}

func (r TicketRequest) String() string {
	return fmt.Sprintf("%s x%d", r.category, r.count)
}
