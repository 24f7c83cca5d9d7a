package pixbuf

// Named colors for drawing.
var (
	Black   = RGB{0x00, 0x00, 0x00}
	White   = RGB{0xFF, 0xFF, 0xFF}
	Red     = RGB{0xFF, 0x00, 0x00}
	Green   = RGB{0x00, 0x80, 0x00}
	Blue    = RGB{0x00, 0x00, 0xFF}
	Magenta = RGB{0xFF, 0x00, 0xFF}
	Cyan    = RGB{0x00, 0xFF, 0xFF}
	Yellow  = RGB{0xFF, 0xFF, 0x00}
	Gray    = RGB{0x80, 0x80, 0x80}
	Silver  = RGB{0xC0, 0xC0, 0xC0}
	Olive   = RGB{0x80, 0x80, 0x00}
	Lime    = RGB{0x00, 0xFF, 0x00}
)
