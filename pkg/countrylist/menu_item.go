package countrylist

// Row is one line of a list.
type Row struct {
	Text    string
	FlagKey string // Texture cache key of the row icon; empty for no icon
}

// FooterHelpItem is one button hint in the footer.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}
