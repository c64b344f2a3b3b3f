// Package shop sells stat upgrades and potions for coins.
//
// Prices scale directly with the difficulty multiplier: the base price in
// shop.json is the Normal price, Easy is cheaper and Hard is dearer.
package shop

import (
	"errors"
	"fmt"
	"math"

	"github.com/samdwyer/textquest/internal/gamedata"
)

var (
	// ErrInsufficientFunds is returned when the buyer can't afford an item.
	// The buyer is left unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownItem is returned for an item the shop doesn't sell.
	ErrUnknownItem = errors.New("unknown item")
)

// Buyer is the player's side of a purchase.
type Buyer interface {
	SpendCoins(amount int) bool
	ApplyItem(item *gamedata.ItemDef)
}

// Receipt describes a completed purchase.
type Receipt struct {
	Item  gamedata.ItemID
	Name  string
	Price int
}

// Offer is one catalog line priced for the current difficulty.
type Offer struct {
	Item  *gamedata.ItemDef
	Price int
}

// Ledger prices and sells catalog items.
type Ledger struct {
	catalog *gamedata.ItemCatalog
}

// NewLedger creates a ledger over the given catalog.
func NewLedger(catalog *gamedata.ItemCatalog) *Ledger {
	return &Ledger{catalog: catalog}
}

// PriceFor returns round(base * multiplier), at least 1.
func PriceFor(base int, multiplier float64) int {
	if multiplier < 0 {
		multiplier = 0
	}
	p := math.Round(float64(base) * multiplier)
	if p >= math.MaxInt32 {
		return math.MaxInt32
	}
	return max(int(p), 1)
}

// Price returns the price of item at the given difficulty multiplier.
func (l *Ledger) Price(item gamedata.ItemID, multiplier float64) (int, error) {
	def := l.catalog.GetByID(item)
	if def == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownItem, item)
	}
	return PriceFor(def.BasePrice, multiplier), nil
}

// Offers lists every item with its current price, in catalog order.
func (l *Ledger) Offers(multiplier float64) []Offer {
	all := l.catalog.All()
	offers := make([]Offer, 0, len(all))
	for i := range all {
		offers = append(offers, Offer{
			Item:  &all[i],
			Price: PriceFor(all[i].BasePrice, multiplier),
		})
	}
	return offers
}

// Purchase sells item to buyer. Either the whole purchase happens (coins
// deducted, stats granted) or nothing does.
func (l *Ledger) Purchase(buyer Buyer, item gamedata.ItemID, multiplier float64) (Receipt, error) {
	def := l.catalog.GetByID(item)
	if def == nil {
		return Receipt{}, fmt.Errorf("%w: %s", ErrUnknownItem, item)
	}

	price := PriceFor(def.BasePrice, multiplier)
	if !buyer.SpendCoins(price) {
		return Receipt{}, fmt.Errorf("%w: %s costs %d", ErrInsufficientFunds, def.Name, price)
	}
	buyer.ApplyItem(def)

	return Receipt{Item: def.ID, Name: def.Name, Price: price}, nil
}
