// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

// MemStore is an in-memory Store. It backs the tests; nothing it writes
// outlives the process. Instances are shared per path so a value written
// through one accessor is visible through the next, like the real store.
type MemStore struct {
	// Readonly makes every write fail, mimicking a store whose backend
	// rejects writes.
	Readonly bool

	instances map[string]*memSettings
}

func NewMemStore() *MemStore {
	return &MemStore{instances: make(map[string]*memSettings)}
}

func (st *MemStore) Open(schemaID, path string) (Settings, error) {
	if s, ok := st.instances[path]; ok {
		return s, nil
	}
	s := &memSettings{
		schemaID: schemaID,
		values:   make(map[string]interface{}),
		store:    st,
	}
	st.instances[path] = s
	return s, nil
}

// Paths returns the schema paths that have been opened, in no particular
// order. Tests use it to assert that failed operations touched nothing.
func (st *MemStore) Paths() []string {
	var paths []string
	for path, s := range st.instances {
		if len(s.values) != 0 {
			paths = append(paths, path)
		}
	}
	return paths
}

type memSettings struct {
	schemaID string
	values   map[string]interface{}
	store    *MemStore
}

func (s *memSettings) HasKey(key string) bool {
	_, ok := schemaVocabulary[s.schemaID][key]
	return ok
}

func (s *memSettings) set(key string, v interface{}) bool {
	if s.store.Readonly {
		return false
	}
	s.values[key] = v
	return true
}

func (s *memSettings) Boolean(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

func (s *memSettings) SetBoolean(key string, v bool) bool { return s.set(key, v) }

func (s *memSettings) String(key string) string {
	v, _ := s.values[key].(string)
	return v
}

func (s *memSettings) SetString(key, v string) bool { return s.set(key, v) }

func (s *memSettings) Enum(key string) int32 {
	v, _ := s.values[key].(int32)
	return v
}

func (s *memSettings) SetEnum(key string, v int32) bool { return s.set(key, v) }

func (s *memSettings) IntArray(key string) []int32 {
	v, _ := s.values[key].([]int32)
	return v
}

func (s *memSettings) SetIntArray(key string, v []int32) bool { return s.set(key, v) }

func (s *memSettings) DoubleArray(key string) []float64 {
	v, _ := s.values[key].([]float64)
	return v
}

func (s *memSettings) SetDoubleArray(key string, v []float64) bool { return s.set(key, v) }

func (s *memSettings) Strv(key string) []string {
	v, _ := s.values[key].([]string)
	return v
}

func (s *memSettings) SetStrv(key string, v []string) bool { return s.set(key, v) }

func (s *memSettings) Close() {}
