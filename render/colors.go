package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCardFace   = tcell.NewRGBColor(230, 230, 230) // Card body
	RgbCardBlack  = tcell.NewRGBColor(20, 20, 20)    // Clubs and spades
	RgbCardRed    = tcell.NewRGBColor(200, 30, 30)   // Diamonds and hearts
	RgbCardBorder = tcell.NewRGBColor(120, 120, 140)
	RgbTopBorder  = tcell.NewRGBColor(255, 215, 0) // Playable stack card
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbTitle      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// suitColor returns the ink color of a suit
func suitColor(suit int) tcell.Color {
	if suit == 1 || suit == 2 {
		return RgbCardRed
	}
	return RgbCardBlack
}
