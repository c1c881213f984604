package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"teletext/internal/ui/input/types"
)

// FavoriteMode waits for the slot digit after f (jump) or F (store)
type FavoriteMode struct {
	keys  types.KeyMap
	store bool
}

func NewFavoriteJumpMode(keys types.KeyMap) *FavoriteMode {
	return &FavoriteMode{keys: keys}
}

func NewFavoriteStoreMode(keys types.KeyMap) *FavoriteMode {
	return &FavoriteMode{keys: keys, store: true}
}

func (m *FavoriteMode) Name() string {
	if m.store {
		return "favorite-store"
	}
	return "favorite-jump"
}

func (m *FavoriteMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FavoriteMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FavoriteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	back := types.ChangeModeAction{Mode: types.ModeNormal}

	if d, ok := digit(msg, m.keys); ok {
		if m.store {
			return []types.Action{types.StoreFavoriteAction{Digit: d}, back}, true
		}
		return []types.Action{types.FavoriteJumpAction{Digit: d}, back}, true
	}

	if msg.String() == "ctrl+c" {
		return []types.Action{types.QuitAction{}}, true
	}

	// Any other key abandons the favorite prefix
	return []types.Action{back}, true
}
