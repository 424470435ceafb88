// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

// KeyType is the declared value type of a schema key.
type KeyType int

const (
	KeyTypeBool KeyType = iota
	KeyTypeString
	KeyTypeEnum
	KeyTypeIntArray
	KeyTypeDoubleArray
	KeyTypeStringArray
)

// KeyInfo describes one key of a schema. The vocabulary is fixed by the
// desktop environment's schema definitions and mirrored here; keys are not
// discovered at runtime.
type KeyInfo struct {
	Type KeyType

	// Enum nicks indexed by their stored integer value.
	Enum []string

	// Fixed element count for array keys, 0 for unconstrained.
	ArrayLen int

	// Inclusive element range for integer array keys.
	Min, Max int32
}

// Enum value maps. The integer values are the compositor's; they must
// match exactly.
var (
	mappingEnum      = []string{"absolute", "relative"}
	padActionEnum    = []string{"none", "help", "switch-monitor", "keybinding"}
	stylusActionEnum = []string{"left", "middle", "right", "back", "forward", "switch-monitor", "keybinding"}
)

var tabletKeys = map[string]KeyInfo{
	"area":        {Type: KeyTypeDoubleArray, ArrayLen: 4},
	"keep-aspect": {Type: KeyTypeBool},
	"left-handed": {Type: KeyTypeBool},
	"mapping":     {Type: KeyTypeEnum, Enum: mappingEnum},
	"output":      {Type: KeyTypeStringArray, ArrayLen: 4},
}

var stylusKeys = map[string]KeyInfo{
	"pressure-curve":              {Type: KeyTypeIntArray, ArrayLen: 4, Min: 0, Max: 100},
	"eraser-pressure-curve":       {Type: KeyTypeIntArray, ArrayLen: 4, Min: 0, Max: 100},
	"pressure-range":              {Type: KeyTypeIntArray, ArrayLen: 2, Min: 0, Max: 100},
	"eraser-pressure-range":       {Type: KeyTypeIntArray, ArrayLen: 2, Min: 0, Max: 100},
	"button-action":               {Type: KeyTypeEnum, Enum: stylusActionEnum},
	"secondary-button-action":     {Type: KeyTypeEnum, Enum: stylusActionEnum},
	"tertiary-button-action":      {Type: KeyTypeEnum, Enum: stylusActionEnum},
	"button-keybinding":           {Type: KeyTypeString},
	"secondary-button-keybinding": {Type: KeyTypeString},
	"tertiary-button-keybinding":  {Type: KeyTypeString},
}

var padButtonKeys = map[string]KeyInfo{
	"action":     {Type: KeyTypeEnum, Enum: padActionEnum},
	"keybinding": {Type: KeyTypeString},
}

var schemaVocabulary = map[string]map[string]KeyInfo{
	TabletSchemaID:    tabletKeys,
	StylusSchemaID:    stylusKeys,
	PadButtonSchemaID: padButtonKeys,
}

// Display orderings for show output. Keys absent from an older installed
// schema are skipped at render time.
var (
	TabletShowKeys = []string{"area", "keep-aspect", "left-handed", "mapping", "output"}

	StylusShowKeys = []string{
		"pressure-curve",
		"eraser-pressure-curve",
		"pressure-range",
		"eraser-pressure-range",
		"button-action",
		"secondary-button-action",
		"tertiary-button-action",
		"button-keybinding",
		"secondary-button-keybinding",
		"tertiary-button-keybinding",
	}
)

func lookupKey(schemaID, key string) (KeyInfo, error) {
	keys, ok := schemaVocabulary[schemaID]
	if !ok {
		return KeyInfo{}, &UnknownSchemaKeyError{Schema: schemaID, Key: key}
	}
	info, ok := keys[key]
	if !ok {
		return KeyInfo{}, &UnknownSchemaKeyError{Schema: schemaID, Key: key}
	}
	return info, nil
}

func (info KeyInfo) enumValue(nick string) (int32, bool) {
	for i, n := range info.Enum {
		if n == nick {
			return int32(i), true
		}
	}
	return 0, false
}

func (info KeyInfo) enumNick(value int32) (string, bool) {
	if value < 0 || int(value) >= len(info.Enum) {
		return "", false
	}
	return info.Enum[value], true
}
