// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package devices

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListStyli(t *testing.T) {
	serials, err := listStyli("testdata/tools")
	assert.NoError(t, err)
	assert.Equal(t, []string{"99800b93", "8a20a3f1"}, serials)
}

func TestListStyliMissingCache(t *testing.T) {
	serials, err := listStyli(filepath.Join(t.TempDir(), "no", "such", "cache"))
	assert.NoError(t, err)
	assert.Empty(t, serials)
}

func TestListStyliEmptyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))

	serials, err := listStyli(path)
	assert.NoError(t, err)
	assert.Empty(t, serials)
}
