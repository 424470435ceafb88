// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import (
	"fmt"

	"github.com/linuxdeepin/go-gir/gio-2.0"
	"github.com/linuxdeepin/go-gir/glib-2.0"
)

// GioStore is the GSettings-backed store. Each Open instantiates the
// relocatable schema at the given path; writes land in dconf and become
// visible to the compositor.
type GioStore struct{}

func NewGioStore() *GioStore {
	return &GioStore{}
}

func (*GioStore) Open(schemaID, path string) (Settings, error) {
	if !relocatableSchemaInstalled(schemaID) {
		return nil, fmt.Errorf("schema %s is not installed", schemaID)
	}
	s := gio.NewSettingsWithPath(schemaID, path)
	return &gioSettings{settings: s, keys: s.ListKeys()}, nil
}

func relocatableSchemaInstalled(schemaID string) bool {
	for _, id := range gio.SettingsListRelocatableSchemas() {
		if id == schemaID {
			return true
		}
	}
	return false
}

type gioSettings struct {
	settings gio.Settings
	keys     []string
}

func (s *gioSettings) HasKey(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *gioSettings) Boolean(key string) bool {
	return s.settings.GetBoolean(key)
}

func (s *gioSettings) SetBoolean(key string, v bool) bool {
	return s.settings.SetBoolean(key, v)
}

func (s *gioSettings) String(key string) string {
	return s.settings.GetString(key)
}

func (s *gioSettings) SetString(key, v string) bool {
	return s.settings.SetString(key, v)
}

func (s *gioSettings) Enum(key string) int32 {
	return s.settings.GetEnum(key)
}

func (s *gioSettings) SetEnum(key string, v int32) bool {
	return s.settings.SetEnum(key, v)
}

func (s *gioSettings) IntArray(key string) []int32 {
	variant := s.settings.GetValue(key)
	defer variant.Unref()
	n := int(variant.NChildren())
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		child := variant.GetChildValue(uint64(i))
		out[i] = child.GetInt32()
		child.Unref()
	}
	return out
}

func (s *gioSettings) SetIntArray(key string, v []int32) bool {
	children := make([]glib.Variant, len(v))
	for i, e := range v {
		children[i] = glib.NewVariantInt32(e)
	}
	return s.settings.SetValue(key, glib.NewVariantArray(glib.NewVariantType("i"), children))
}

func (s *gioSettings) DoubleArray(key string) []float64 {
	variant := s.settings.GetValue(key)
	defer variant.Unref()
	n := int(variant.NChildren())
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		child := variant.GetChildValue(uint64(i))
		out[i] = child.GetDouble()
		child.Unref()
	}
	return out
}

func (s *gioSettings) SetDoubleArray(key string, v []float64) bool {
	children := make([]glib.Variant, len(v))
	for i, e := range v {
		children[i] = glib.NewVariantDouble(e)
	}
	return s.settings.SetValue(key, glib.NewVariantArray(glib.NewVariantType("d"), children))
}

func (s *gioSettings) Strv(key string) []string {
	return s.settings.GetStrv(key)
}

func (s *gioSettings) SetStrv(key string, v []string) bool {
	return s.settings.SetStrv(key, v)
}

// Close flushes pending writes before releasing the instance. The process
// exits right after the last write, so without the sync a write could be
// lost on the way to the dconf daemon.
func (s *gioSettings) Close() {
	gio.SettingsSync()
	s.settings.Unref()
}
