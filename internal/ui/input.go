package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/textquest/internal/game"
	"github.com/samdwyer/textquest/internal/shop"
)

// KeyToSignal maps a key press in phase to a game signal. Digits in the shop
// pick from offers, 1-based. ok is false for keys the phase has no use for.
func KeyToSignal(phase game.Phase, key tcell.Key, r rune, offers []shop.Offer) (sig game.Signal, ok bool) {
	if key == tcell.KeyEnter {
		r = '\n'
	} else if key != tcell.KeyRune {
		return game.Signal{}, false
	}

	switch phase {
	case game.PhaseMainMenu:
		switch r {
		case 's', 'S':
			return game.NewSignal(game.SignalStartGame), true
		case 'd', 'D':
			return game.NewSignal(game.SignalChangeDifficulty), true
		case 'q', 'Q':
			return game.NewSignal(game.SignalExitGame), true
		}

	case game.PhaseFighting:
		switch r {
		case 'a', 'A':
			return game.NewSignal(game.SignalAttack), true
		case 'p', 'P':
			return game.NewSignal(game.SignalUsePotion), true
		case 'f', 'F':
			return game.NewSignal(game.SignalFlee), true
		}

	case game.PhaseShop:
		if r == 'l' || r == 'L' {
			return game.NewSignal(game.SignalLeaveShop), true
		}
		if i := int(r - '1'); i >= 0 && i < len(offers) && i < 9 {
			return game.PurchaseSignal(offers[i].Item.ID), true
		}

	case game.PhaseGameOver:
		if r == '\n' || r == ' ' {
			return game.NewSignal(game.SignalAcknowledge), true
		}
	}
	return game.Signal{}, false
}
