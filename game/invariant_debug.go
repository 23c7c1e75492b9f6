//go:build pongdebug

package game

const debugAsserts = true
