//go:build !hexdebug

package search

const debugChecks = false
