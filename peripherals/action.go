// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"fmt"
	"strings"
)

// ActionKeybinding is the action kind that carries an accelerator string.
// All other kinds are builtins named by their enum nick.
const ActionKeybinding = "keybinding"

// Action is what a physical control (pad button, ring, strip, stylus
// button) is mapped to: a named builtin, or a keybinding with an
// accelerator string.
type Action struct {
	Kind       string
	Keybinding string
}

// NewAction builds an action from CLI arguments and validates it against
// the allowed set for the control. keybinding must be given exactly when
// the action is "keybinding".
func NewAction(kind, keybinding string, allowed []string) (Action, error) {
	found := false
	for _, n := range allowed {
		if n == kind {
			found = true
			break
		}
	}
	if !found {
		return Action{}, &InvalidValueError{Key: "action", Reason: fmt.Sprintf("%q is not one of %v", kind, allowed)}
	}
	if kind == ActionKeybinding {
		if keybinding == "" {
			return Action{}, &InvalidValueError{Key: "action", Reason: "a keybinding must be provided for action keybinding"}
		}
	} else if keybinding != "" {
		return Action{}, &InvalidValueError{Key: "action", Reason: "a keybinding is only valid for action keybinding"}
	}
	return Action{Kind: kind, Keybinding: keybinding}, nil
}

// Encode returns the single-string form of the action, e.g. "back" or
// "keybinding <Control>z". Decode reverses it.
func (a Action) Encode() string {
	if a.Kind == ActionKeybinding {
		return ActionKeybinding + " " + a.Keybinding
	}
	return a.Kind
}

// DecodeAction parses the single-string form produced by Encode.
func DecodeAction(s string) (Action, error) {
	if name, accel, ok := strings.Cut(s, " "); ok {
		if name != ActionKeybinding || accel == "" {
			return Action{}, &ParseError{Input: s}
		}
		return Action{Kind: ActionKeybinding, Keybinding: accel}, nil
	}
	if s == ActionKeybinding || !knownActionNick(s) {
		return Action{}, &ParseError{Input: s}
	}
	return Action{Kind: s}, nil
}

func knownActionNick(s string) bool {
	for _, set := range [][]string{padActionEnum, stylusActionEnum} {
		for _, n := range set {
			if n == s {
				return true
			}
		}
	}
	return false
}

// Apply writes the action to its enum key and, for keybindings, the
// accompanying keybinding key. The keybinding key is written first so a
// consumer never observes action=keybinding with a stale accelerator.
func (a Action) Apply(acc *Accessor, actionKey, keybindingKey string) error {
	if a.Kind == ActionKeybinding {
		if err := acc.SetString(keybindingKey, a.Keybinding); err != nil {
			return err
		}
	}
	return acc.SetEnum(actionKey, a.Kind)
}

// PadActions and StylusActions are the recognized action names per control
// class.
func PadActions() []string {
	return append([]string(nil), padActionEnum...)
}

func StylusActions() []string {
	return append([]string(nil), stylusActionEnum...)
}

// PressureCurve maps a firmness level 1 (softest) to 7 (firmest) to the
// four bezier control points stored in the pressure-curve keys.
func PressureCurve(level int) ([]int32, error) {
	if level < 1 || level > 7 {
		return nil, &InvalidValueError{Key: "pressure", Reason: fmt.Sprintf("level %d out of range [1, 7]", level)}
	}
	const seg = 6.0
	const d = 30.0
	x := (100-2*d)/seg*(float64(level)-1) + d
	y := 100 - x
	return []int32{int32(x - d), int32(y - d), int32(x + d), int32(y + d)}, nil
}
