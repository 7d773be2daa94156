package parameter

// Card glyph size in terminal cells
const (
	CardCellWidth  = 5
	CardCellHeight = 3
)

// Layout & Margins
const (
	// BottomMargin for status bar
	BottomMargin = 1

	// TopMargin for title line
	TopMargin = 1
)

// Status bar text
const (
	StatusHint = " click: play  u: undo  r: restart  n: next  m: mute  q: quit "
	AudioStr   = "♫ "
)
