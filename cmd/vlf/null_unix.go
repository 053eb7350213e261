//go:build !windows

package main

const nullDevice = "/dev/null"
