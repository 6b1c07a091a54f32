// Package tickets simulates a clerk selling 25 dollar tickets to a queue of
// people paying with 25, 50 or 100 dollar bills, starting with no money.
package tickets

import (
	"errors"
	"fmt"
)

// Price of a single ticket.
const Price = 25

var (
	ErrNoChange    = errors.New("unable to give change")
	ErrUnknownBill = errors.New("unsupported bill")
)

// Tally is the state of the clerk's cash box.
type Tally struct {
	Twentyfives int
	Fifties     int
	Hundreds    int
	Sold        int
}

// Clerk sells tickets in order and keeps bills to give change. The zero value
// is ready to use.
type Clerk struct {
	tally Tally
}

// Sell accepts bill for one ticket. On error the cash box is left as it was.
func (c *Clerk) Sell(bill int) error {
	t := c.tally
	switch bill {
	case 25:
		t.Twentyfives++
	case 50:
		if t.Twentyfives == 0 {
			return fmt.Errorf("%w for %d", ErrNoChange, bill)
		}
		t.Twentyfives--
		t.Fifties++
	case 100:
		// prefer giving away the fifty, twentyfives are more useful later
		switch {
		case t.Fifties > 0 && t.Twentyfives > 0:
			t.Fifties--
			t.Twentyfives--
		case t.Twentyfives >= 3:
			t.Twentyfives -= 3
		default:
			return fmt.Errorf("%w for %d", ErrNoChange, bill)
		}
		t.Hundreds++
	default:
		return fmt.Errorf("%w: %d", ErrUnknownBill, bill)
	}
	t.Sold++
	c.tally = t
	return nil
}

// Tally returns current state of the cash box.
func (c *Clerk) Tally() Tally {
	return c.tally
}

// SellAll serves the whole queue and stops at the first person who cannot
// be served. It returns number of tickets sold.
func (c *Clerk) SellAll(bills []int) (int, error) {
	for i, b := range bills {
		if err := c.Sell(b); err != nil {
			return i, fmt.Errorf("person %d: %w", i+1, err)
		}
	}
	return len(bills), nil
}

// CanSellAll reports whether a fresh clerk can serve every person in the
// queue.
func CanSellAll(bills []int) bool {
	var c Clerk
	_, err := c.SellAll(bills)
	return err == nil
}
