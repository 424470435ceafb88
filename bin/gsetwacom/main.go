// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"

	"github.com/linuxdeepin/go-lib/gettext"
)

func main() {
	gettext.InitI18n()
	gettext.BindTextdomainCodeset("gsetwacom", "UTF-8")
	gettext.Textdomain("gsetwacom")

	if err := execute(); err != nil {
		os.Exit(1)
	}
}
