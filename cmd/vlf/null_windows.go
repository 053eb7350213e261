//go:build windows

package main

const nullDevice = "NUL"
