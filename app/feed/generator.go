package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/lysyi3m/fda-feed/app/cfg"
	"github.com/lysyi3m/fda-feed/app/source"
)

type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Run renders entries as an RSS 2.0 document for the given source. All
// user-influenced text (titles, URLs, channel metadata) is escaped on the
// way out; the page is untrusted input. An empty entry list still produces
// a valid channel shell with zero items.
func (g *Generator) Run(src source.Source, entries []Entry) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", src.Title, 4)
	g.writeElement(&buf, "link", src.PageURL, 4)
	description := src.Description
	if description == "" {
		description = fmt.Sprintf("Feed generated from %s", src.PageURL)
	}
	g.writeElement(&buf, "description", description, 4)

	g.writeElement(&buf, "lastBuildDate", g.now().UTC().Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("fda-feed/%s", cfg.GetVersion()), 4)

	for _, entry := range entries {
		g.writeEntry(&buf, entry)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.String(), nil
}

func (g *Generator) writeEntry(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", entry.Title, 6)
	g.writeElement(buf, "link", entry.URL, 6)

	// The entry URL doubles as a permalink GUID
	buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", g.isURL(entry.URL)))
	xml.EscapeText(buf, []byte(entry.URL))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "pubDate", entry.PublishedAt.UTC().Format(time.RFC1123Z), 6)

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) isURL(s string) bool {
	return (len(s) > 7 && s[:7] == "http://") || (len(s) > 8 && s[:8] == "https://")
}
