// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import "fmt"

// Store opens relocatable schema instances at a given path. The real
// backend is GSettings; tests substitute an in-memory implementation.
type Store interface {
	Open(schemaID, path string) (Settings, error)
}

// Settings is one schema instance. The typed setters report false when the
// underlying store rejects the write.
type Settings interface {
	HasKey(key string) bool

	Boolean(key string) bool
	SetBoolean(key string, v bool) bool
	String(key string) string
	SetString(key, v string) bool
	Enum(key string) int32
	SetEnum(key string, v int32) bool
	IntArray(key string) []int32
	SetIntArray(key string, v []int32) bool
	DoubleArray(key string) []float64
	SetDoubleArray(key string, v []float64) bool
	Strv(key string) []string
	SetStrv(key string, v []string) bool

	Close()
}

// Value is a typed value read from a schema instance. Enum values carry
// their nick string.
type Value struct {
	Type    KeyType
	Bool    bool
	Str     string
	Ints    []int32
	Doubles []float64
	Strs    []string
}

// Accessor reads and writes the keys of one schema instance with
// type-correct coercion against the fixed vocabulary.
type Accessor struct {
	settings Settings
	schemaID string
	path     string
}

// OpenTablet opens the settings of the given tablet.
func OpenTablet(store Store, id USBID) (*Accessor, error) {
	return open(store, TabletSchemaID, TabletPath(id))
}

// OpenStylus opens the settings of the given stylus tool.
func OpenStylus(store Store, id StylusID) (*Accessor, error) {
	return open(store, StylusSchemaID, StylusPath(id))
}

// OpenPadGroup opens the pad-button settings instance at path, as built by
// PadButtonPath, PadRingPath or PadStripPath.
func OpenPadGroup(store Store, path string) (*Accessor, error) {
	return open(store, PadButtonSchemaID, path)
}

func open(store Store, schemaID, path string) (*Accessor, error) {
	settings, err := store.Open(schemaID, path)
	if err != nil {
		return nil, fmt.Errorf("open %s at %s: %w", schemaID, path, err)
	}
	return &Accessor{settings: settings, schemaID: schemaID, path: path}, nil
}

// Path returns the schema path this accessor is bound to.
func (a *Accessor) Path() string {
	return a.path
}

// Close releases the underlying settings instance.
func (a *Accessor) Close() {
	a.settings.Close()
}

// HasKey reports whether the installed schema carries the key. Older
// desktop versions may lack keys the vocabulary knows about.
func (a *Accessor) HasKey(key string) bool {
	_, err := lookupKey(a.schemaID, key)
	return err == nil && a.settings.HasKey(key)
}

func (a *Accessor) checkKey(key string, want KeyType) (KeyInfo, error) {
	info, err := lookupKey(a.schemaID, key)
	if err != nil {
		return KeyInfo{}, err
	}
	if info.Type != want {
		return KeyInfo{}, &InvalidValueError{Key: key, Reason: "value type does not match the key's declared type"}
	}
	if !a.settings.HasKey(key) {
		return KeyInfo{}, &UnknownSchemaKeyError{Schema: a.schemaID, Key: key}
	}
	return info, nil
}

// Get returns the current value of key with its declared type.
func (a *Accessor) Get(key string) (Value, error) {
	info, err := lookupKey(a.schemaID, key)
	if err != nil {
		return Value{}, err
	}
	if !a.settings.HasKey(key) {
		return Value{}, &UnknownSchemaKeyError{Schema: a.schemaID, Key: key}
	}
	v := Value{Type: info.Type}
	switch info.Type {
	case KeyTypeBool:
		v.Bool = a.settings.Boolean(key)
	case KeyTypeString:
		v.Str = a.settings.String(key)
	case KeyTypeEnum:
		nick, ok := info.enumNick(a.settings.Enum(key))
		if !ok {
			return Value{}, &InvalidValueError{Key: key, Reason: "stored enum value outside the known set"}
		}
		v.Str = nick
	case KeyTypeIntArray:
		v.Ints = a.settings.IntArray(key)
	case KeyTypeDoubleArray:
		v.Doubles = a.settings.DoubleArray(key)
	case KeyTypeStringArray:
		v.Strs = a.settings.Strv(key)
	}
	return v, nil
}

// SetBoolean writes a boolean key.
func (a *Accessor) SetBoolean(key string, v bool) error {
	if _, err := a.checkKey(key, KeyTypeBool); err != nil {
		return err
	}
	if !a.settings.SetBoolean(key, v) {
		return &StoreWriteError{Path: a.path, Key: key}
	}
	return nil
}

// SetString writes a string key.
func (a *Accessor) SetString(key, v string) error {
	if _, err := a.checkKey(key, KeyTypeString); err != nil {
		return err
	}
	if !a.settings.SetString(key, v) {
		return &StoreWriteError{Path: a.path, Key: key}
	}
	return nil
}

// SetEnum writes an enumerated key by nick.
func (a *Accessor) SetEnum(key, nick string) error {
	info, err := a.checkKey(key, KeyTypeEnum)
	if err != nil {
		return err
	}
	value, ok := info.enumValue(nick)
	if !ok {
		return &InvalidValueError{Key: key, Reason: fmt.Sprintf("%q is not one of %v", nick, info.Enum)}
	}
	if !a.settings.SetEnum(key, value) {
		return &StoreWriteError{Path: a.path, Key: key}
	}
	return nil
}

// SetIntArray writes a fixed-length integer array key, validating length
// and element range.
func (a *Accessor) SetIntArray(key string, v []int32) error {
	info, err := a.checkKey(key, KeyTypeIntArray)
	if err != nil {
		return err
	}
	if info.ArrayLen != 0 && len(v) != info.ArrayLen {
		return &InvalidValueError{Key: key, Reason: fmt.Sprintf("expected %d elements, got %d", info.ArrayLen, len(v))}
	}
	for _, e := range v {
		if e < info.Min || e > info.Max {
			return &InvalidValueError{Key: key, Reason: fmt.Sprintf("element %d out of range [%d, %d]", e, info.Min, info.Max)}
		}
	}
	if !a.settings.SetIntArray(key, v) {
		return &StoreWriteError{Path: a.path, Key: key}
	}
	return nil
}

// SetDoubleArray writes a fixed-length double array key.
func (a *Accessor) SetDoubleArray(key string, v []float64) error {
	info, err := a.checkKey(key, KeyTypeDoubleArray)
	if err != nil {
		return err
	}
	if info.ArrayLen != 0 && len(v) != info.ArrayLen {
		return &InvalidValueError{Key: key, Reason: fmt.Sprintf("expected %d elements, got %d", info.ArrayLen, len(v))}
	}
	if !a.settings.SetDoubleArray(key, v) {
		return &StoreWriteError{Path: a.path, Key: key}
	}
	return nil
}

// SetStrv writes a string array key.
func (a *Accessor) SetStrv(key string, v []string) error {
	info, err := a.checkKey(key, KeyTypeStringArray)
	if err != nil {
		return err
	}
	if info.ArrayLen != 0 && len(v) != info.ArrayLen {
		return &InvalidValueError{Key: key, Reason: fmt.Sprintf("expected %d elements, got %d", info.ArrayLen, len(v))}
	}
	if !a.settings.SetStrv(key, v) {
		return &StoreWriteError{Path: a.path, Key: key}
	}
	return nil
}
