//go:build !linux
// +build !linux

package main

import "filepickers-sample/picker"

// defaultBackend uses the system file dialogs on Windows and macOS.
const defaultBackend = picker.BackendNative
