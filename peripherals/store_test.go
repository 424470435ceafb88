// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustTabletAccessor(t *testing.T, store Store) *Accessor {
	t.Helper()
	id, err := ParseUSBID("056a:0357")
	assert.NoError(t, err)
	acc, err := OpenTablet(store, id)
	assert.NoError(t, err)
	return acc
}

func TestBooleanRoundTrip(t *testing.T) {
	acc := mustTabletAccessor(t, NewMemStore())

	assert.NoError(t, acc.SetBoolean("left-handed", true))
	value, err := acc.Get("left-handed")
	assert.NoError(t, err)
	assert.Equal(t, KeyTypeBool, value.Type)
	assert.True(t, value.Bool)

	assert.NoError(t, acc.SetBoolean("left-handed", false))
	value, err = acc.Get("left-handed")
	assert.NoError(t, err)
	assert.False(t, value.Bool)
}

func TestIntArrayRoundTrip(t *testing.T) {
	store := NewMemStore()
	id, err := ParseStylusID("99800b93")
	assert.NoError(t, err)
	acc, err := OpenStylus(store, id)
	assert.NoError(t, err)

	curve := []int32{0, 38, 62, 100}
	assert.NoError(t, acc.SetIntArray("pressure-curve", curve))
	value, err := acc.Get("pressure-curve")
	assert.NoError(t, err)
	assert.Equal(t, curve, value.Ints)

	// wrong length
	err = acc.SetIntArray("pressure-curve", []int32{0, 100})
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)

	// element out of range
	err = acc.SetIntArray("pressure-curve", []int32{0, 38, 62, 101})
	assert.ErrorAs(t, err, &invalid)

	// range key takes two elements
	assert.NoError(t, acc.SetIntArray("pressure-range", []int32{10, 90}))
}

func TestDoubleArrayRoundTrip(t *testing.T) {
	acc := mustTabletAccessor(t, NewMemStore())

	area := []float64{0, 0, 100, 100}
	assert.NoError(t, acc.SetDoubleArray("area", area))
	value, err := acc.Get("area")
	assert.NoError(t, err)
	assert.Equal(t, area, value.Doubles)

	err = acc.SetDoubleArray("area", []float64{0, 0, 100})
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)
}

func TestEnumValidation(t *testing.T) {
	acc := mustTabletAccessor(t, NewMemStore())

	assert.NoError(t, acc.SetEnum("mapping", "relative"))
	value, err := acc.Get("mapping")
	assert.NoError(t, err)
	assert.Equal(t, "'relative'", value.String())

	err = acc.SetEnum("mapping", "diagonal")
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)
}

func TestUnknownKey(t *testing.T) {
	acc := mustTabletAccessor(t, NewMemStore())

	_, err := acc.Get("no-such-key")
	var unknown *UnknownSchemaKeyError
	assert.ErrorAs(t, err, &unknown)

	err = acc.SetBoolean("no-such-key", true)
	assert.ErrorAs(t, err, &unknown)

	// key exists but with another type
	err = acc.SetBoolean("mapping", true)
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)
}

func TestReadonlyStoreSurfacesWriteError(t *testing.T) {
	store := NewMemStore()
	store.Readonly = true
	acc := mustTabletAccessor(t, store)

	err := acc.SetBoolean("left-handed", true)
	var writeErr *StoreWriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestOutputStrv(t *testing.T) {
	acc := mustTabletAccessor(t, NewMemStore())

	output := []string{"DEL", "DELL U2720Q", "ABCD123", "DP-1"}
	assert.NoError(t, acc.SetStrv("output", output))
	value, err := acc.Get("output")
	assert.NoError(t, err)
	assert.Equal(t, output, value.Strs)

	err = acc.SetStrv("output", []string{"DP-1"})
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)
}
