package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorFading // trail segments about to expire
	ColorFood
	ColorProjectile
	ColorHUD
	ColorAlert
	ColorDim
)
