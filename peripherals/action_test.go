// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionRoundTrip(t *testing.T) {
	var actions []Action
	for _, nick := range PadActions() {
		if nick == ActionKeybinding {
			continue
		}
		actions = append(actions, Action{Kind: nick})
	}
	for _, nick := range StylusActions() {
		if nick == ActionKeybinding {
			continue
		}
		actions = append(actions, Action{Kind: nick})
	}
	actions = append(actions,
		Action{Kind: ActionKeybinding, Keybinding: "<Control>z"},
		Action{Kind: ActionKeybinding, Keybinding: "<Shift><Super>Print"},
	)

	for _, action := range actions {
		decoded, err := DecodeAction(action.Encode())
		assert.NoError(t, err, "action %v", action)
		assert.Equal(t, action, decoded)
	}
}

func TestDecodeActionRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"", "fly", "keybinding", "keybinding ", "back <Control>z"} {
		_, err := DecodeAction(bad)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr, "input %q", bad)
	}
}

func TestNewAction(t *testing.T) {
	action, err := NewAction("back", "", StylusActions())
	assert.NoError(t, err)
	assert.Equal(t, Action{Kind: "back"}, action)

	action, err = NewAction("keybinding", "<Control>z", PadActions())
	assert.NoError(t, err)
	assert.Equal(t, Action{Kind: "keybinding", Keybinding: "<Control>z"}, action)

	// stylus-only action on a pad control
	_, err = NewAction("back", "", PadActions())
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)

	// keybinding argument without the keybinding action
	_, err = NewAction("help", "<Control>z", PadActions())
	assert.ErrorAs(t, err, &invalid)

	// keybinding action without an accelerator
	_, err = NewAction("keybinding", "", PadActions())
	assert.ErrorAs(t, err, &invalid)
}

func TestApplyActionWritesEnumAndKeybinding(t *testing.T) {
	store := NewMemStore()
	acc, err := OpenPadGroup(store, "/org/gnome/desktop/peripherals/tablets/056a:0357/buttonA/")
	assert.NoError(t, err)

	action, err := NewAction("keybinding", "<Control>z", PadActions())
	assert.NoError(t, err)
	assert.NoError(t, action.Apply(acc, "action", "keybinding"))

	value, err := acc.Get("action")
	assert.NoError(t, err)
	assert.Equal(t, "'keybinding'", value.String())
	value, err = acc.Get("keybinding")
	assert.NoError(t, err)
	assert.Equal(t, "'<Control>z'", value.String())

	// builtin action leaves the accelerator untouched
	action, err = NewAction("help", "", PadActions())
	assert.NoError(t, err)
	assert.NoError(t, action.Apply(acc, "action", "keybinding"))
	value, err = acc.Get("action")
	assert.NoError(t, err)
	assert.Equal(t, "'help'", value.String())
	value, err = acc.Get("keybinding")
	assert.NoError(t, err)
	assert.Equal(t, "'<Control>z'", value.String())
}

func TestPressureCurve(t *testing.T) {
	curve, err := PressureCurve(4)
	assert.NoError(t, err)
	assert.Equal(t, []int32{20, 20, 80, 80}, curve)

	curve, err = PressureCurve(1)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 40, 60, 100}, curve)

	curve, err = PressureCurve(7)
	assert.NoError(t, err)
	assert.Equal(t, []int32{40, 0, 100, 60}, curve)

	for _, bad := range []int{0, 8, -1} {
		_, err := PressureCurve(bad)
		assert.Error(t, err, "level %d", bad)
	}
}
