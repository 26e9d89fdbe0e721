package demo

import "github.com/isseis/go-term-styler/ansi"

// namedCode pairs a display name with its catalog code for grid rendering.
type namedCode struct {
	name string
	code ansi.Code
}

// styleEntries lists the text styles shown by the styles demo. Reset codes
// are omitted; previewing them would render unstyled text.
var styleEntries = []namedCode{
	{"BOLD", ansi.Bold},
	{"DIM", ansi.Dim},
	{"ITALIC", ansi.Italic},
	{"UNDERLINE", ansi.Underline},
	{"DOUBLE_UNDERLINE", ansi.DoubleUnderline},
	{"REVERSED", ansi.Reversed},
	{"HIDDEN", ansi.Hidden},
	{"STRIKETHROUGH", ansi.Strikethrough},
	{"OVERLINE", ansi.Overline},
}

var foregroundEntries = []namedCode{
	{"BLACK", ansi.FgBlack},
	{"RED", ansi.FgRed},
	{"GREEN", ansi.FgGreen},
	{"YELLOW", ansi.FgYellow},
	{"BLUE", ansi.FgBlue},
	{"MAGENTA", ansi.FgMagenta},
	{"CYAN", ansi.FgCyan},
	{"WHITE", ansi.FgWhite},
	{"BRIGHT_BLACK", ansi.FgBrightBlack},
	{"BRIGHT_RED", ansi.FgBrightRed},
	{"BRIGHT_GREEN", ansi.FgBrightGreen},
	{"BRIGHT_YELLOW", ansi.FgBrightYellow},
	{"BRIGHT_BLUE", ansi.FgBrightBlue},
	{"BRIGHT_MAGENTA", ansi.FgBrightMagenta},
	{"BRIGHT_CYAN", ansi.FgBrightCyan},
	{"BRIGHT_WHITE", ansi.FgBrightWhite},
}

var backgroundEntries = []namedCode{
	{"BLACK", ansi.BgBlack},
	{"RED", ansi.BgRed},
	{"GREEN", ansi.BgGreen},
	{"YELLOW", ansi.BgYellow},
	{"BLUE", ansi.BgBlue},
	{"MAGENTA", ansi.BgMagenta},
	{"CYAN", ansi.BgCyan},
	{"WHITE", ansi.BgWhite},
	{"BRIGHT_BLACK", ansi.BgBrightBlack},
	{"BRIGHT_RED", ansi.BgBrightRed},
	{"BRIGHT_GREEN", ansi.BgBrightGreen},
	{"BRIGHT_YELLOW", ansi.BgBrightYellow},
	{"BRIGHT_BLUE", ansi.BgBrightBlue},
	{"BRIGHT_MAGENTA", ansi.BgBrightMagenta},
	{"BRIGHT_CYAN", ansi.BgBrightCyan},
	{"BRIGHT_WHITE", ansi.BgBrightWhite},
}
