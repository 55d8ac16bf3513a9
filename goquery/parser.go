// Package goquery provides a DOM-based implementation of
// netpull.PageParser. It extracts structured content, images, tables,
// forms, and meta tags from rendered HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/netpull"
)

// Ensure Parser implements netpull.PageParser at compile time.
var _ netpull.PageParser = (*Parser)(nil)

// Parser parses rendered HTML with CSS selectors.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the artifact kinds selected in opts. Unselected kinds
// are left nil. Structured data is always produced; it feeds the
// enrichment stage regardless of the artifact toggles.
func (p *Parser) Parse(html string, opts netpull.ExtractionOptions) (*netpull.ParsedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, netpull.Errorf(netpull.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &netpull.ParsedPage{
		Structured: extractStructured(doc),
	}

	if opts.Images {
		page.Images = extractImages(doc)
	}
	if opts.Tables {
		page.Tables = extractTables(doc)
	}
	if opts.Forms {
		page.Forms = extractForms(doc)
	}
	if opts.Metadata {
		page.Metadata = extractMetadata(doc)
	}

	return page, nil
}

func extractStructured(doc *goquery.Document) *netpull.StructuredData {
	sd := &netpull.StructuredData{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			sd.Headings = append(sd.Headings, text)
		}
	})

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			sd.Paragraphs = append(sd.Paragraphs, text)
		}
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
			return
		}
		sd.Links = append(sd.Links, href)
	})

	return sd
}

func extractImages(doc *goquery.Document) []netpull.Image {
	var images []netpull.Image
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" {
			return
		}
		alt, _ := sel.Attr("alt")
		images = append(images, netpull.Image{Src: src, Alt: alt})
	})
	return images
}

func extractTables(doc *goquery.Document) []netpull.Table {
	var tables []netpull.Table
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var t netpull.Table
		table.Find("th").Each(func(_ int, th *goquery.Selection) {
			t.Headers = append(t.Headers, strings.TrimSpace(th.Text()))
		})
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var row []string
			tr.Find("td").Each(func(_ int, td *goquery.Selection) {
				row = append(row, strings.TrimSpace(td.Text()))
			})
			if len(row) > 0 {
				t.Rows = append(t.Rows, row)
			}
		})
		tables = append(tables, t)
	})
	return tables
}

func extractForms(doc *goquery.Document) []netpull.Form {
	var forms []netpull.Form
	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		f := netpull.Form{}
		f.Action, _ = form.Attr("action")
		f.Method, _ = form.Attr("method")
		form.Find("input, select, textarea").Each(func(_ int, field *goquery.Selection) {
			name, _ := field.Attr("name")
			if name == "" {
				return
			}
			typ, _ := field.Attr("type")
			if typ == "" {
				typ = goquery.NodeName(field)
			}
			f.Fields = append(f.Fields, netpull.FormField{Name: name, Type: typ})
		})
		forms = append(forms, f)
	})
	return forms
}

func extractMetadata(doc *goquery.Document) map[string]string {
	md := make(map[string]string)
	doc.Find("meta").Each(func(_ int, meta *goquery.Selection) {
		content, ok := meta.Attr("content")
		if !ok {
			return
		}
		key, _ := meta.Attr("property")
		if key == "" {
			key, _ = meta.Attr("name")
		}
		if key == "" {
			return
		}
		// First occurrence wins for duplicate keys.
		if _, exists := md[key]; !exists {
			md[key] = content
		}
	})
	return md
}
