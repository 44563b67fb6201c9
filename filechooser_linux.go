//go:build linux
// +build linux

package main

import "filepickers-sample/picker"

// defaultBackend draws Fyne's own dialogs on Linux, where a native dialog
// depends on zenity or kdialog being installed.
const defaultBackend = picker.BackendFyne
