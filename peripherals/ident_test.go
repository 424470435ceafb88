// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUSBID(t *testing.T) {
	id, err := ParseUSBID("056A:0357")
	assert.NoError(t, err)
	assert.Equal(t, USBID{Vendor: 0x056a, Product: 0x0357}, id)

	// case must not matter
	lower, err := ParseUSBID("056a:0357")
	assert.NoError(t, err)
	assert.Equal(t, id, lower)

	// short fields are zero padded
	id, err = ParseUSBID("56a:57")
	assert.NoError(t, err)
	assert.Equal(t, "/org/gnome/desktop/peripherals/tablets/056a:0057/", TabletPath(id))

	for _, bad := range []string{"", ":", "056a", "056a:", ":0357", "056a:0357:1", "g56a:0357", "056a:03571"} {
		_, err := ParseUSBID(bad)
		var malformed *MalformedIdentifierError
		assert.ErrorAs(t, err, &malformed, "input %q", bad)
	}
}

func TestTabletPathIsCaseInsensitive(t *testing.T) {
	upper, err := ParseUSBID("056A:0357")
	assert.NoError(t, err)
	lower, err := ParseUSBID("056a:0357")
	assert.NoError(t, err)
	assert.Equal(t, TabletPath(lower), TabletPath(upper))
	assert.Equal(t, "/org/gnome/desktop/peripherals/tablets/056a:0357/", TabletPath(upper))
}

func TestParseStylusID(t *testing.T) {
	id, err := ParseStylusID("99800b93")
	assert.NoError(t, err)
	assert.True(t, id.HasSerial)
	assert.Equal(t, uint64(0x99800b93), id.Serial)
	assert.Equal(t, "/org/gnome/desktop/peripherals/stylus/99800b93/", StylusPath(id))

	// leading 0x and case are accepted, canonical form is bare lowercase
	id, err = ParseStylusID("0x99800B93")
	assert.NoError(t, err)
	assert.Equal(t, "/org/gnome/desktop/peripherals/stylus/99800b93/", StylusPath(id))

	// tools without a serial fall back to the tablet's usb id
	id, err = ParseStylusID("056A:0357")
	assert.NoError(t, err)
	assert.False(t, id.HasSerial)
	assert.Equal(t, "/org/gnome/desktop/peripherals/stylus/default-056a:0357/", StylusPath(id))

	for _, bad := range []string{"", "0", "wxyz", "056a:", "0x"} {
		_, err := ParseStylusID(bad)
		var malformed *MalformedIdentifierError
		assert.ErrorAs(t, err, &malformed, "input %q", bad)
	}
}

func TestPadButtonPath(t *testing.T) {
	id, err := ParseUSBID("056a:0357")
	assert.NoError(t, err)

	b, err := ParsePadButton("A")
	assert.NoError(t, err)
	assert.Equal(t, "/org/gnome/desktop/peripherals/tablets/056a:0357/buttonA/", PadButtonPath(id, b))

	b, err = ParsePadButton("c")
	assert.NoError(t, err)
	assert.Equal(t, byte('C'), b)

	for _, bad := range []string{"", "AA", "1", "-"} {
		_, err := ParsePadButton(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestPadRingPath(t *testing.T) {
	id, err := ParseUSBID("056a:0357")
	assert.NoError(t, err)

	path, err := PadRingPath(id, 1, "cw", 0)
	assert.NoError(t, err)
	assert.Equal(t, "/org/gnome/desktop/peripherals/tablets/056a:0357/ringA-cw-mode-0/", path)

	path, err = PadRingPath(id, 2, "ccw", 3)
	assert.NoError(t, err)
	assert.Equal(t, "/org/gnome/desktop/peripherals/tablets/056a:0357/ringB-ccw-mode-3/", path)

	_, err = PadRingPath(id, 0, "cw", 0)
	assert.Error(t, err)
	_, err = PadRingPath(id, 1, "up", 0)
	assert.Error(t, err)
	_, err = PadRingPath(id, 1, "cw", -1)
	assert.Error(t, err)
}

func TestPadStripPath(t *testing.T) {
	id, err := ParseUSBID("056a:0357")
	assert.NoError(t, err)

	path, err := PadStripPath(id, 1, "down", 2)
	assert.NoError(t, err)
	assert.Equal(t, "/org/gnome/desktop/peripherals/tablets/056a:0357/stripA-down-mode-2/", path)

	_, err = PadStripPath(id, 1, "cw", 0)
	assert.Error(t, err)
	_, err = PadStripPath(id, 27, "up", 0)
	assert.Error(t, err)
}
