// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package monitors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testMonitors = []Monitor{
	{Connector: "eDP-1", Vendor: "BOE", Product: "0x095f", Serial: "0x00000000"},
	{Connector: "DP-3", Vendor: "DEL", Product: "DELL U2720Q", Serial: "ABCD123"},
	{Connector: "DP-4", Vendor: "DEL", Product: "DELL U2720Q", Serial: "EFGH456"},
}

func TestFindByConnector(t *testing.T) {
	mon, err := findIn(testMonitors, Match{Connector: "DP-3"})
	assert.NoError(t, err)
	assert.Equal(t, "ABCD123", mon.Serial)
}

func TestFindBySerialAndVendor(t *testing.T) {
	mon, err := findIn(testMonitors, Match{Vendor: "DEL", Serial: "EFGH456"})
	assert.NoError(t, err)
	assert.Equal(t, "DP-4", mon.Connector)
}

func TestFindFirstMatchWins(t *testing.T) {
	// two monitors share vendor and product, the first one is returned
	mon, err := findIn(testMonitors, Match{Vendor: "DEL"})
	assert.NoError(t, err)
	assert.Equal(t, "DP-3", mon.Connector)
}

func TestFindNoMatch(t *testing.T) {
	_, err := findIn(testMonitors, Match{Connector: "HDMI-1"})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMatchEmpty(t *testing.T) {
	assert.True(t, Match{}.Empty())
	assert.False(t, Match{Vendor: "DEL"}.Empty())
}
