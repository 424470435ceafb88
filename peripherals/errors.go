// SPDX-FileCopyrightText: 2024 gsetwacom contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package peripherals

import "fmt"

// MalformedIdentifierError reports a device identifier that does not match
// the expected format. It is raised before any store access.
type MalformedIdentifierError struct {
	ID       string
	Expected string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed identifier %q, expected %s", e.ID, e.Expected)
}

// UnknownSchemaKeyError reports a key that does not exist in the schema.
type UnknownSchemaKeyError struct {
	Schema string
	Key    string
}

func (e *UnknownSchemaKeyError) Error() string {
	return fmt.Sprintf("key %q does not exist in schema %s", e.Key, e.Schema)
}

// InvalidValueError reports a value that does not match the key's declared
// type, range or enumeration. Nothing is written when it is raised.
type InvalidValueError struct {
	Key    string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %s", e.Key, e.Reason)
}

// StoreWriteError reports that the underlying store rejected a write, e.g.
// the key is not writable or the dconf daemon is unavailable.
type StoreWriteError struct {
	Path string
	Key  string
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store rejected write of %q at %s", e.Key, e.Path)
}

// ParseError reports an action string that does not match any recognized
// pattern.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized action %q", e.Input)
}
