// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package devices

import (
	"strconv"
	"strings"

	gudev "github.com/linuxdeepin/go-gir/gudev-1.0"
	"github.com/linuxdeepin/go-lib/log"

	"gsetwacom/peripherals"
)

var logger = log.NewLogger("gsetwacom/devices")

// SetLogLevel adjusts this package's log verbosity.
func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}

// Tablet is one tablet device currently present in udev. Presence here
// does not imply the compositor knows the device or that configuration
// for it exists.
type Tablet struct {
	Name string
	ID   peripherals.USBID
}

// ListTablets enumerates tablet devices from the input subsystem. Pads
// and touchpads share event nodes with tablets and are filtered out.
func ListTablets() []Tablet {
	client := gudev.NewClient([]string{"input"})
	defer client.Unref()

	var tablets []Tablet
	seen := make(map[peripherals.USBID]bool)
	for _, device := range client.QueryBySubsystem("input") {
		if !strings.HasPrefix(device.GetName(), "event") {
			device.Unref()
			continue
		}
		if device.GetProperty("ID_INPUT_TABLET") != "1" ||
			device.GetProperty("ID_INPUT_TABLET_PAD") == "1" ||
			device.GetProperty("ID_INPUT_TOUCHPAD") == "1" {
			device.Unref()
			continue
		}

		vendor, errV := parseUdevHex(device.GetProperty("ID_VENDOR_ID"))
		product, errP := parseUdevHex(device.GetProperty("ID_MODEL_ID"))
		if errV != nil || errP != nil {
			logger.Warning("bad usb id properties on", device.GetName())
			device.Unref()
			continue
		}

		name := device.GetProperty("NAME")
		if name == "" {
			// the event node has no NAME, its parent input device does
			parent := device.GetParent()
			if parent != nil {
				name = parent.GetProperty("NAME")
				parent.Unref()
			}
		}
		name = strings.Trim(name, `"`)
		device.Unref()

		id := peripherals.USBID{Vendor: vendor, Product: product}
		if seen[id] {
			continue
		}
		seen[id] = true
		tablets = append(tablets, Tablet{Name: name, ID: id})
	}
	return tablets
}

func parseUdevHex(s string) (uint16, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
