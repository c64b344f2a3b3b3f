package game

import (
	"fmt"

	"github.com/samdwyer/textquest/internal/gamedata"
)

// SignalKind is an abstract player input. The UI turns each user action
// into exactly one signal.
type SignalKind int

const (
	SignalStartGame SignalKind = iota + 1
	SignalChangeDifficulty
	SignalExitGame
	SignalAttack
	SignalUsePotion
	SignalFlee
	SignalPurchase
	SignalLeaveShop
	SignalAcknowledge
)

var signalNames = map[SignalKind]string{
	SignalStartGame:        "start_game",
	SignalChangeDifficulty: "change_difficulty",
	SignalExitGame:         "exit_game",
	SignalAttack:           "attack",
	SignalUsePotion:        "use_potion",
	SignalFlee:             "flee",
	SignalPurchase:         "purchase",
	SignalLeaveShop:        "leave_shop",
	SignalAcknowledge:      "acknowledge",
}

func (k SignalKind) String() string {
	if s, ok := signalNames[k]; ok {
		return s
	}
	return "unknown"
}

// Signal is one input delivered to the state machine. Item is set only
// for purchases.
type Signal struct {
	Kind SignalKind
	Item gamedata.ItemID
}

// NewSignal returns a signal without a payload.
func NewSignal(kind SignalKind) Signal {
	return Signal{Kind: kind}
}

// PurchaseSignal asks the shop to sell item.
func PurchaseSignal(item gamedata.ItemID) Signal {
	return Signal{Kind: SignalPurchase, Item: item}
}

func (s Signal) String() string {
	if s.Kind == SignalPurchase {
		return fmt.Sprintf("%s(%s)", s.Kind, s.Item)
	}
	return s.Kind.String()
}
