// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"fmt"
	"strconv"
	"strings"
)

// Schema ids and path roots owned by the desktop environment. The paths
// built from them address relocatable schema instances; the compositor
// reads the same paths, so the formats below must not change.
const (
	TabletSchemaID    = "org.gnome.desktop.peripherals.tablet"
	StylusSchemaID    = "org.gnome.desktop.peripherals.tablet.stylus"
	PadButtonSchemaID = "org.gnome.desktop.peripherals.tablet.pad-button"

	tabletPathRoot = "/org/gnome/desktop/peripherals/tablets/"
	stylusPathRoot = "/org/gnome/desktop/peripherals/stylus/"
)

// USBID identifies a tablet by its USB vendor and product id.
type USBID struct {
	Vendor  uint16
	Product uint16
}

// ParseUSBID parses a vendor:product pair in the form 1234:abcd,
// case-insensitive.
func ParseUSBID(s string) (USBID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return USBID{}, &MalformedIdentifierError{ID: s, Expected: usbIDFormat}
	}
	vendor, err := parseHex16(parts[0])
	if err != nil {
		return USBID{}, &MalformedIdentifierError{ID: s, Expected: usbIDFormat}
	}
	product, err := parseHex16(parts[1])
	if err != nil {
		return USBID{}, &MalformedIdentifierError{ID: s, Expected: usbIDFormat}
	}
	return USBID{Vendor: vendor, Product: product}, nil
}

func parseHex16(s string) (uint16, error) {
	if s == "" || len(s) > 4 {
		return 0, fmt.Errorf("invalid hex field %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// pathSegment is the canonical per-device segment used in schema paths,
// lowercase and zero-padded to match what the compositor looks up.
func (id USBID) pathSegment() string {
	return fmt.Sprintf("%04x:%04x", id.Vendor, id.Product)
}

// String renders the id the way udev databases and device listings do,
// uppercase hex.
func (id USBID) String() string {
	return fmt.Sprintf("%04X:%04X", id.Vendor, id.Product)
}

// StylusID identifies a stylus tool, either by its unique tool serial or,
// for tools without one, by the owning tablet's vendor:product pair. The
// two forms map to disjoint path namespaces: serials are bare lowercase
// hex, the fallback carries a "default-" prefix.
type StylusID struct {
	Serial    uint64
	Tablet    USBID
	HasSerial bool
}

// ParseStylusID parses a stylus identifier. An identifier containing ':'
// is taken as the owning tablet's vendor:product pair, anything else as a
// hexadecimal tool serial.
func ParseStylusID(s string) (StylusID, error) {
	if strings.Contains(s, ":") {
		usbID, err := ParseUSBID(s)
		if err != nil {
			return StylusID{}, &MalformedIdentifierError{ID: s, Expected: stylusIDFormat}
		}
		return StylusID{Tablet: usbID}, nil
	}
	serial := strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(serial, 16, 64)
	if err != nil || v == 0 {
		return StylusID{}, &MalformedIdentifierError{ID: s, Expected: stylusIDFormat}
	}
	return StylusID{Serial: v, HasSerial: true}, nil
}

func (id StylusID) pathSegment() string {
	if id.HasSerial {
		return strconv.FormatUint(id.Serial, 16)
	}
	return "default-" + id.Tablet.pathSegment()
}

func (id StylusID) String() string {
	if id.HasSerial {
		return strconv.FormatUint(id.Serial, 16)
	}
	return id.Tablet.String()
}

const (
	usbIDFormat    = "vendor:product USB id, e.g. 056a:0357"
	stylusIDFormat = "hexadecimal tool serial, or vendor:product USB id of the tablet for tools without a serial"
)

// TabletPath returns the schema path of the tablet's settings instance.
func TabletPath(id USBID) string {
	return tabletPathRoot + id.pathSegment() + "/"
}

// StylusPath returns the schema path of the stylus' settings instance.
func StylusPath(id StylusID) string {
	return stylusPathRoot + id.pathSegment() + "/"
}

// ParsePadButton validates a pad button name. Buttons are addressed by a
// single letter A..Z, case-insensitive.
func ParsePadButton(s string) (byte, error) {
	if len(s) != 1 {
		return 0, &MalformedIdentifierError{ID: s, Expected: "single button letter A-Z"}
	}
	b := s[0]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if b < 'A' || b > 'Z' {
		return 0, &MalformedIdentifierError{ID: s, Expected: "single button letter A-Z"}
	}
	return b, nil
}

// PadButtonPath returns the schema path of one pad button of the tablet.
func PadButtonPath(tablet USBID, button byte) string {
	return TabletPath(tablet) + "button" + string(button) + "/"
}

// PadRingPath returns the schema path of one ring direction in one mode.
// Rings are numbered from 1 (ring 1 is ringA).
func PadRingPath(tablet USBID, ring int, direction string, mode int) (string, error) {
	letter, err := groupLetter("ring", ring)
	if err != nil {
		return "", err
	}
	if direction != "cw" && direction != "ccw" {
		return "", &InvalidValueError{Key: "direction", Reason: fmt.Sprintf("%q is not one of cw, ccw", direction)}
	}
	if mode < 0 {
		return "", &InvalidValueError{Key: "mode", Reason: "mode must not be negative"}
	}
	return fmt.Sprintf("%sring%c-%s-mode-%d/", TabletPath(tablet), letter, direction, mode), nil
}

// PadStripPath returns the schema path of one strip direction in one mode.
// Strips are numbered from 1 (strip 1 is stripA).
func PadStripPath(tablet USBID, strip int, direction string, mode int) (string, error) {
	letter, err := groupLetter("strip", strip)
	if err != nil {
		return "", err
	}
	if direction != "up" && direction != "down" {
		return "", &InvalidValueError{Key: "direction", Reason: fmt.Sprintf("%q is not one of up, down", direction)}
	}
	if mode < 0 {
		return "", &InvalidValueError{Key: "mode", Reason: "mode must not be negative"}
	}
	return fmt.Sprintf("%sstrip%c-%s-mode-%d/", TabletPath(tablet), letter, direction, mode), nil
}

func groupLetter(kind string, num int) (byte, error) {
	if num < 1 || num > 26 {
		return 0, &InvalidValueError{Key: kind, Reason: fmt.Sprintf("%s number %d out of range [1, 26]", kind, num)}
	}
	return byte('A' + num - 1), nil
}
