// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package monitors queries the compositor's current monitor layout via
// org.gnome.Mutter.DisplayConfig.
package monitors

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/log"
)

var logger = log.NewLogger("gsetwacom/monitors")

// SetLogLevel adjusts this package's log verbosity.
func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}

const (
	displayConfigDest = "org.gnome.Mutter.DisplayConfig"
	displayConfigPath = "/org/gnome/Mutter/DisplayConfig"
)

// Monitor identifies one connected monitor the way the compositor does.
// The four fields are exactly what the tablet's output key stores.
type Monitor struct {
	Connector string
	Vendor    string
	Product   string
	Serial    string
}

// Match selects a monitor by any subset of its fields; empty fields are
// wildcards.
type Match struct {
	Vendor    string
	Product   string
	Serial    string
	Connector string
}

// Empty reports whether no criterion is set.
func (m Match) Empty() bool {
	return m == Match{}
}

func (m Match) matches(mon Monitor) bool {
	if m.Vendor != "" && m.Vendor != mon.Vendor {
		return false
	}
	if m.Product != "" && m.Product != mon.Product {
		return false
	}
	if m.Serial != "" && m.Serial != mon.Serial {
		return false
	}
	if m.Connector != "" && m.Connector != mon.Connector {
		return false
	}
	return true
}

// NotFoundError reports that no connected monitor matched the criteria.
type NotFoundError struct {
	Match Match
}

func (e *NotFoundError) Error() string {
	return "unable to find this monitor in the current configuration"
}

// GetCurrentState return types, per the DisplayConfig introspection. Only
// the monitor spec quadruple is used here; the rest is carried so the
// signature matches.
type monitorSpec struct {
	Connector string
	Vendor    string
	Product   string
	Serial    string
}

type monitorMode struct {
	ID              string
	Width           int32
	Height          int32
	RefreshRate     float64
	PreferredScale  float64
	SupportedScales []float64
	Properties      map[string]dbus.Variant
}

type monitorInfo struct {
	Spec       monitorSpec
	Modes      []monitorMode
	Properties map[string]dbus.Variant
}

type logicalMonitorInfo struct {
	X          int32
	Y          int32
	Scale      float64
	Transform  uint32
	Primary    bool
	Monitors   []monitorSpec
	Properties map[string]dbus.Variant
}

// List returns the connected monitors known to the compositor.
func List() ([]Monitor, error) {
	bus, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	var (
		serial  uint32
		infos   []monitorInfo
		logical []logicalMonitorInfo
		props   map[string]dbus.Variant
	)
	obj := bus.Object(displayConfigDest, dbus.ObjectPath(displayConfigPath))
	err = obj.Call(displayConfigDest+".GetCurrentState", 0).Store(&serial, &infos, &logical, &props)
	if err != nil {
		return nil, fmt.Errorf("query display config: %w", err)
	}

	monitors := make([]Monitor, 0, len(infos))
	for _, info := range infos {
		monitors = append(monitors, Monitor(info.Spec))
	}
	return monitors, nil
}

// Find returns the first connected monitor matching the criteria.
func Find(match Match) (Monitor, error) {
	all, err := List()
	if err != nil {
		return Monitor{}, err
	}
	return findIn(all, match)
}

func findIn(all []Monitor, match Match) (Monitor, error) {
	for _, mon := range all {
		logger.Debugf("monitor on %s vendor %q product %q serial %q",
			mon.Connector, mon.Vendor, mon.Product, mon.Serial)
		if match.matches(mon) {
			return mon, nil
		}
	}
	return Monitor{}, &NotFoundError{Match: match}
}
