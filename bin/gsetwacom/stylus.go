// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gsetwacom/peripherals"
)

var stylusID peripherals.StylusID

var stylusCmd = &cobra.Command{
	Use:   "stylus <serial|vendor:product>",
	Short: "Show or change configuration for a stylus tool",
	Long: `Show or change configuration for a stylus tool.

The stylus is a hexadecimal tool serial, see list-styli. For tools that
do not support unique serials it is the vendor/product USB id tuple of
the tablet in the form 1234:abcd.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		applyVerbosity()
		if deviceArg == "" {
			return fmt.Errorf("a stylus must be given, e.g. gsetwacom stylus 99800b93 show")
		}
		var err error
		stylusID, err = peripherals.ParseStylusID(deviceArg)
		return err
	},
}

func openStylus() (*peripherals.Accessor, error) {
	return peripherals.OpenStylus(store, stylusID)
}

var stylusShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration of the stylus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		acc, err := openStylus()
		if err != nil {
			return err
		}
		defer acc.Close()
		lines, err := peripherals.FormatSettings(acc, peripherals.StylusShowKeys)
		if err != nil {
			return err
		}
		for _, line := range lines {
			cmd.Println(line)
		}
		return nil
	},
}

var (
	curveEraser bool

	stylusSetPressureCurveCmd = &cobra.Command{
		Use:   "set-pressure-curve <x1> <y1> <x2> <y2>",
		Short: "Change the pressure curve of the stylus or eraser",
		Long: `Change the pressure configuration of this stylus or eraser.

The given arguments must be in the range [0, 100] and describe the two
points BC of a bezier curve ABCD where A = (0, 0) and D = (100, 100).`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := intArgs(args)
			if err != nil {
				return err
			}
			acc, err := openStylus()
			if err != nil {
				return err
			}
			defer acc.Close()
			return acc.SetIntArray(eraserKey("pressure-curve", curveEraser), curve)
		},
	}
)

var (
	rangeEraser bool

	stylusSetPressureRangeCmd = &cobra.Command{
		Use:   "set-pressure-range <minimum> <maximum>",
		Short: "Change the pressure range of the stylus or eraser",
		Long: `Change the pressure range of this stylus or eraser.

The given arguments must be in the range [0, 100].`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limits, err := intArgs(args)
			if err != nil {
				return err
			}
			acc, err := openStylus()
			if err != nil {
				return err
			}
			defer acc.Close()
			return acc.SetIntArray(eraserKey("pressure-range", rangeEraser), limits)
		},
	}
)

var (
	levelEraser bool

	stylusSetPressureCmd = &cobra.Command{
		Use:   "set-pressure <level>",
		Short: "Change the pressure firmness level of the stylus or eraser",
		Long: `Change the pressure firmness of this stylus or eraser.

The level is a value from 1 (softest) to 7 (firmest) and maps to a
predefined pressure curve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("pressure level must be a number, not %q", args[0])
			}
			curve, err := peripherals.PressureCurve(level)
			if err != nil {
				return err
			}
			acc, err := openStylus()
			if err != nil {
				return err
			}
			defer acc.Close()
			return acc.SetIntArray(eraserKey("pressure-curve", levelEraser), curve)
		},
	}
)

var stylusButtonPrefix = map[string]string{
	"primary":   "button",
	"secondary": "secondary-button",
	"tertiary":  "tertiary-button",
}

var stylusSetButtonActionCmd = &cobra.Command{
	Use:   "set-button-action <button> <action> [keybinding]",
	Short: "Change a button action of the stylus",
	Long: `Change the button action of this stylus.

The button is one of primary, secondary or tertiary, the action one of
left, middle, right, back, forward, switch-monitor or keybinding. The
keybinding argument is required for (and only valid with) the
keybinding action.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, ok := stylusButtonPrefix[args[0]]
		if !ok {
			return fmt.Errorf("button must be one of primary, secondary or tertiary, not %q", args[0])
		}
		keybinding := ""
		if len(args) > 2 {
			keybinding = args[2]
		}
		action, err := peripherals.NewAction(args[1], keybinding, peripherals.StylusActions())
		if err != nil {
			return err
		}
		acc, err := openStylus()
		if err != nil {
			return err
		}
		defer acc.Close()
		return action.Apply(acc, prefix+"-action", prefix+"-keybinding")
	},
}

func eraserKey(key string, eraser bool) string {
	if eraser {
		return "eraser-" + key
	}
	return key
}

func intArgs(args []string) ([]int32, error) {
	out := make([]int32, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("expected a number, not %q", arg)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func init() {
	stylusSetPressureCurveCmd.Flags().BoolVar(&curveEraser, "eraser", false, "change the eraser pressure curve")
	stylusSetPressureRangeCmd.Flags().BoolVar(&rangeEraser, "eraser", false, "change the eraser pressure range")
	stylusSetPressureCmd.Flags().BoolVar(&levelEraser, "eraser", false, "change the eraser pressure")

	stylusCmd.AddCommand(
		stylusShowCmd,
		stylusSetPressureCurveCmd,
		stylusSetPressureRangeCmd,
		stylusSetPressureCmd,
		stylusSetButtonActionCmd,
	)
	rootCmd.AddCommand(stylusCmd)
}
