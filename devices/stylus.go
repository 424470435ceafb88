// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package devices

import (
	"os"
	"path/filepath"

	"github.com/linuxdeepin/go-lib/keyfile"
	"github.com/linuxdeepin/go-lib/xdg/basedir"
)

// The control center records every stylus it has seen in proximity, one
// keyfile group per tool serial. This tool only reads that cache; a stylus
// missing here has simply never been brought above the control center.
const styliCacheRelPath = "gnome-control-center/wacom/tools"

// ListStyli returns the serial numbers of previously seen styli. A
// missing or empty cache yields an empty list, not an error.
func ListStyli() ([]string, error) {
	return listStyli(filepath.Join(basedir.GetUserCacheDir(), styliCacheRelPath))
}

func listStyli(path string) ([]string, error) {
	kf := keyfile.NewKeyFile()
	err := kf.LoadFromFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no stylus cache at", path)
			return nil, nil
		}
		return nil, err
	}
	return kf.GetSections(), nil
}
