package ansi

// Text style codes.
var (
	Bold            = newCode(KindStyle, "1")
	Dim             = newCode(KindStyle, "2")
	Italic          = newCode(KindStyle, "3")
	Underline       = newCode(KindStyle, "4")
	Reversed        = newCode(KindStyle, "7")
	Hidden          = newCode(KindStyle, "8")
	Strikethrough   = newCode(KindStyle, "9")
	DoubleUnderline = newCode(KindStyle, "21")
	Overline        = newCode(KindStyle, "53")
)

// Reset restores all default attributes, ending the effect of every
// previously emitted code. The Reset* codes undo a single attribute each.
var (
	Reset = newCode(KindStyle, "0")

	ResetBoldDim       = newCode(KindStyle, "22")
	ResetItalic        = newCode(KindStyle, "23")
	ResetUnderline     = newCode(KindStyle, "24")
	ResetReversed      = newCode(KindStyle, "27")
	ResetHidden        = newCode(KindStyle, "28")
	ResetStrikethrough = newCode(KindStyle, "29")
	ResetOverline      = newCode(KindStyle, "55")

	ResetForeground = newCode(KindForeground, "39")
	ResetBackground = newCode(KindBackground, "49")
)

// Standard 16-color palette, foreground.
var (
	FgBlack   = newCode(KindForeground, "30")
	FgRed     = newCode(KindForeground, "31")
	FgGreen   = newCode(KindForeground, "32")
	FgYellow  = newCode(KindForeground, "33")
	FgBlue    = newCode(KindForeground, "34")
	FgMagenta = newCode(KindForeground, "35")
	FgCyan    = newCode(KindForeground, "36")
	FgWhite   = newCode(KindForeground, "37")

	FgBrightBlack   = newCode(KindForeground, "90")
	FgBrightRed     = newCode(KindForeground, "91")
	FgBrightGreen   = newCode(KindForeground, "92")
	FgBrightYellow  = newCode(KindForeground, "93")
	FgBrightBlue    = newCode(KindForeground, "94")
	FgBrightMagenta = newCode(KindForeground, "95")
	FgBrightCyan    = newCode(KindForeground, "96")
	FgBrightWhite   = newCode(KindForeground, "97")
)

// Standard 16-color palette, background.
var (
	BgBlack   = newCode(KindBackground, "40")
	BgRed     = newCode(KindBackground, "41")
	BgGreen   = newCode(KindBackground, "42")
	BgYellow  = newCode(KindBackground, "43")
	BgBlue    = newCode(KindBackground, "44")
	BgMagenta = newCode(KindBackground, "45")
	BgCyan    = newCode(KindBackground, "46")
	BgWhite   = newCode(KindBackground, "47")

	BgBrightBlack   = newCode(KindBackground, "100")
	BgBrightRed     = newCode(KindBackground, "101")
	BgBrightGreen   = newCode(KindBackground, "102")
	BgBrightYellow  = newCode(KindBackground, "103")
	BgBrightBlue    = newCode(KindBackground, "104")
	BgBrightMagenta = newCode(KindBackground, "105")
	BgBrightCyan    = newCode(KindBackground, "106")
	BgBrightWhite   = newCode(KindBackground, "107")
)
