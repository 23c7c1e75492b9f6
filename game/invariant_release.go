//go:build !pongdebug

package game

const debugAsserts = false
