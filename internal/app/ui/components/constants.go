package components

// Generic layout constants
const (
	MinContentWidth  = 40
	MinContentHeight = 3
	FooterHeight     = 2
	ContentPadding   = 2
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Card grid constants
const (
	CardWidth   = 30
	CardColumns = 3
	CardGap     = 2
)
