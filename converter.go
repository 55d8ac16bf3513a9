package netpull

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Used to render a
	// readable preview of the HTML artifact.
	Convert(html string) (string, error)
}
