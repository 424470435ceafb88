// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gsetwacom/monitors"
	"gsetwacom/peripherals"
)

var tabletID peripherals.USBID

var tabletCmd = &cobra.Command{
	Use:   "tablet <vendor:product>",
	Short: "Show or change configuration for a tablet device",
	Long: `Show or change configuration for a tablet device.

The device is a vendor/product USB id tuple in the form 1234:abcd, see
list-tablets.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		applyVerbosity()
		if deviceArg == "" {
			return fmt.Errorf("a tablet device must be given, e.g. gsetwacom tablet 056a:0357 show")
		}
		var err error
		tabletID, err = peripherals.ParseUSBID(deviceArg)
		return err
	},
}

func openTablet() (*peripherals.Accessor, error) {
	return peripherals.OpenTablet(store, tabletID)
}

var tabletShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration of the tablet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		acc, err := openTablet()
		if err != nil {
			return err
		}
		defer acc.Close()
		lines, err := peripherals.FormatSettings(acc, peripherals.TabletShowKeys)
		if err != nil {
			return err
		}
		for _, line := range lines {
			cmd.Println(line)
		}
		return nil
	},
}

var tabletSetLeftHandedCmd = &cobra.Command{
	Use:   "set-left-handed <true|false>",
	Short: "Change the left-handed configuration of the tablet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("left-handed must be true or false, not %q", args[0])
		}
		acc, err := openTablet()
		if err != nil {
			return err
		}
		defer acc.Close()
		return acc.SetBoolean("left-handed", v)
	},
}

var tabletSetKeepAspectCmd = &cobra.Command{
	Use:   "set-keep-aspect <true|false>",
	Short: "Change the keep-aspect configuration of the tablet",
	Long: `Change the keep-aspect configuration of the tablet.

A device with keep-aspect enabled reduces its available area to match
the aspect ratio of the monitor it is mapped to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("keep-aspect must be true or false, not %q", args[0])
		}
		acc, err := openTablet()
		if err != nil {
			return err
		}
		defer acc.Close()
		return acc.SetBoolean("keep-aspect", v)
	},
}

var tabletSetAbsoluteCmd = &cobra.Command{
	Use:   "set-absolute <true|false>",
	Short: "Change between absolute and relative mapping of the tablet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("absolute must be true or false, not %q", args[0])
		}
		mapping := "relative"
		if v {
			mapping = "absolute"
		}
		acc, err := openTablet()
		if err != nil {
			return err
		}
		defer acc.Close()
		return acc.SetEnum("mapping", mapping)
	},
}

var tabletSetAreaCmd = &cobra.Command{
	Use:   "set-area <x1> <y1> <x2> <y2>",
	Short: "Change the area the tablet is mapped to",
	Long: `Change the area the tablet is mapped to. All input parameters are
percentages.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		area := make([]float64, 4)
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("area values must be numbers, not %q", arg)
			}
			area[i] = v
		}
		acc, err := openTablet()
		if err != nil {
			return err
		}
		defer acc.Close()
		return acc.SetDoubleArray("area", area)
	},
}

var mapToMonitorMatch monitors.Match

var tabletMapToMonitorCmd = &cobra.Command{
	Use:   "map-to-monitor",
	Short: "Map the tablet to a given monitor",
	Long: `Map the tablet to a given monitor. The monitor may be specified with
one or more of --vendor, --product, --serial or --connector.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mapToMonitorMatch.Empty() {
			return fmt.Errorf("one of --vendor, --product, --serial or --connector has to be provided")
		}
		monitor, err := monitors.Find(mapToMonitorMatch)
		if err != nil {
			return err
		}
		acc, err := openTablet()
		if err != nil {
			return err
		}
		defer acc.Close()
		return acc.SetStrv("output", []string{
			monitor.Vendor, monitor.Product, monitor.Serial, monitor.Connector,
		})
	},
}

var tabletSetButtonActionCmd = &cobra.Command{
	Use:   "set-button-action <button> <action> [keybinding]",
	Short: "Change the action a pad button is mapped to",
	Long: `Change the action a pad button is mapped to.

The button is a single letter A-Z, the action one of none, help,
switch-monitor or keybinding. The keybinding argument is required for
(and only valid with) the keybinding action.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		button, err := peripherals.ParsePadButton(args[0])
		if err != nil {
			return err
		}
		action, err := padActionFromArgs(args[1:])
		if err != nil {
			return err
		}
		return applyPadAction(peripherals.PadButtonPath(tabletID, button), action)
	},
}

var (
	ringNumber    int
	ringMode      int
	ringDirection string
)

var tabletSetRingActionCmd = &cobra.Command{
	Use:   "set-ring-action <action> [keybinding]",
	Short: "Change the action a pad ring movement is mapped to",
	Long: `Change the action the tablet ring is mapped to for a movement direction
and in a given mode.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, err := padActionFromArgs(args)
		if err != nil {
			return err
		}
		path, err := peripherals.PadRingPath(tabletID, ringNumber, ringDirection, ringMode)
		if err != nil {
			return err
		}
		return applyPadAction(path, action)
	},
}

var (
	stripNumber    int
	stripMode      int
	stripDirection string
)

var tabletSetStripActionCmd = &cobra.Command{
	Use:   "set-strip-action <action> [keybinding]",
	Short: "Change the action a pad strip movement is mapped to",
	Long: `Change the action the tablet strip is mapped to for a movement
direction and in a given mode.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, err := padActionFromArgs(args)
		if err != nil {
			return err
		}
		path, err := peripherals.PadStripPath(tabletID, stripNumber, stripDirection, stripMode)
		if err != nil {
			return err
		}
		return applyPadAction(path, action)
	},
}

func padActionFromArgs(args []string) (peripherals.Action, error) {
	keybinding := ""
	if len(args) > 1 {
		keybinding = args[1]
	}
	return peripherals.NewAction(args[0], keybinding, peripherals.PadActions())
}

func applyPadAction(path string, action peripherals.Action) error {
	acc, err := peripherals.OpenPadGroup(store, path)
	if err != nil {
		return err
	}
	defer acc.Close()
	return action.Apply(acc, "action", "keybinding")
}

func init() {
	tabletMapToMonitorCmd.Flags().StringVar(&mapToMonitorMatch.Vendor, "vendor", "", "the monitor vendor")
	tabletMapToMonitorCmd.Flags().StringVar(&mapToMonitorMatch.Product, "product", "", "the monitor product")
	tabletMapToMonitorCmd.Flags().StringVar(&mapToMonitorMatch.Serial, "serial", "", "the monitor serial")
	tabletMapToMonitorCmd.Flags().StringVar(&mapToMonitorMatch.Connector, "connector", "", "the monitor connector, e.g. DP-1")

	tabletSetRingActionCmd.Flags().IntVar(&ringNumber, "ring", 1, "the ring number to change")
	tabletSetRingActionCmd.Flags().IntVar(&ringMode, "mode", 0, "the zero-indexed mode")
	tabletSetRingActionCmd.Flags().StringVar(&ringDirection, "direction", "cw", "the ring movement direction, cw or ccw")

	tabletSetStripActionCmd.Flags().IntVar(&stripNumber, "strip", 1, "the strip number to change")
	tabletSetStripActionCmd.Flags().IntVar(&stripMode, "mode", 0, "the zero-indexed mode")
	tabletSetStripActionCmd.Flags().StringVar(&stripDirection, "direction", "up", "the strip movement direction, up or down")

	tabletCmd.AddCommand(
		tabletShowCmd,
		tabletSetLeftHandedCmd,
		tabletSetKeepAspectCmd,
		tabletSetAbsoluteCmd,
		tabletSetAreaCmd,
		tabletMapToMonitorCmd,
		tabletSetButtonActionCmd,
		tabletSetRingActionCmd,
		tabletSetStripActionCmd,
	)
	rootCmd.AddCommand(tabletCmd)
}
