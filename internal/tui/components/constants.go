package components

const (
	CardHeight           = 5  // CardHeight is the fixed height of a card (3 lines + border)
	ColumnWidth          = 40 // outer width of a column, border included
	cardTitleMaxLength   = 30 // Maximum display length for card title before truncation
	cardBodyMaxLength    = 32 // Maximum display length for the contents preview
	columnBorderOverhead = 3  // top border + bottom padding + bottom border
	headerLines          = 1  // column title and count
	topIndicatorLines    = 1  // empty line or "▲ more above"
)
