package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"teletext/internal/domain"
	"teletext/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if d, ok := digit(msg, m.keys); ok {
		return []types.Action{types.DigitAction{Digit: d}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Enter):
		return []types.Action{types.EnterAction{}}, true

	case key.Matches(msg, m.keys.Backspace):
		return []types.Action{types.BackspaceAction{}}, true

	case key.Matches(msg, m.keys.Cancel):
		if ctx.Input() == "" && !ctx.IsLoading() {
			return nil, false
		}
		return []types.Action{types.CancelAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.NavigateAction{Direction: "back"}}, true

	case key.Matches(msg, m.keys.Forward):
		return []types.Action{types.NavigateAction{Direction: "forward"}}, true

	case key.Matches(msg, m.keys.Red):
		return []types.Action{types.ColorAction{Color: domain.ColorRed}}, true

	case key.Matches(msg, m.keys.Green):
		return []types.Action{types.ColorAction{Color: domain.ColorGreen}}, true

	case key.Matches(msg, m.keys.Yellow):
		return []types.Action{types.ColorAction{Color: domain.ColorYellow}}, true

	case key.Matches(msg, m.keys.Blue):
		return []types.Action{types.ColorAction{Color: domain.ColorBlue}}, true

	case key.Matches(msg, m.keys.Favorite):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFavoriteJump}}, true

	case key.Matches(msg, m.keys.Store):
		if ctx.CurrentPageID() == "" {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFavoriteStore}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, m.keys.Chain):
		return []types.Action{types.ShowChainAction{}}, true
	}

	return nil, false
}

// digit reports the value of a digit key
func digit(msg tea.KeyMsg, keys types.KeyMap) (int, bool) {
	if !key.Matches(msg, keys.Digits) {
		return 0, false
	}
	s := msg.String()
	return int(s[0] - '0'), true
}
