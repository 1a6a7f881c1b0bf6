//go:build hexdebug

package search

// debugChecks turns internal consistency violations into panics.
const debugChecks = true
