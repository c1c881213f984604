package types

import "teletext/internal/domain"

// Page number entry
type DigitAction struct {
	Digit int
}

func (a DigitAction) Type() string { return "digit" }

type EnterAction struct{}

func (a EnterAction) Type() string { return "enter" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

// CancelAction clears the input buffer, or aborts a pending fetch when the
// buffer is already empty
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// Navigation actions
type NavigateAction struct {
	Direction string // "back", "forward", "up", "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type ColorAction struct {
	Color domain.Color
}

func (a ColorAction) Type() string { return "color" }

// Favorites
type FavoriteJumpAction struct {
	Digit int
}

func (a FavoriteJumpAction) Type() string { return "favorite_jump" }

type StoreFavoriteAction struct {
	Digit int
}

func (a StoreFavoriteAction) Type() string { return "store_favorite" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Pagers
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ShowChainAction struct{}

func (a ShowChainAction) Type() string { return "show_chain" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
