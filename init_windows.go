//go:build windows

package main

import "syscall"

func init() {
	// The replay output contains ×, ÷ and √; switch the console to UTF-8
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	for _, name := range []string{"SetConsoleOutputCP", "SetConsoleCP"} {
		kernel32.NewProc(name).Call(uintptr(65001))
	}
}
