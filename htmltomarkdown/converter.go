// Package htmltomarkdown implements newshound.Converter, turning a
// scored article body into Markdown for downstream storage and display.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/newshoundlabs/newshound"
)

// Ensure Converter implements newshound.Converter at compile time.
var _ newshound.Converter = (*Converter)(nil)

// blankRuns matches runs of three or more newlines left behind when the
// article body carried empty wrapper elements between paragraphs.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert article bodies to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an article body into Markdown. The output is
// normalized: no leading or trailing whitespace, and at most one blank
// line between blocks.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newshound.Errorf(newshound.EINVALID, "no content to convert")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", newshound.Errorf(newshound.EUNPARSABLE, "convert to markdown: %v", err)
	}

	return tidy(result), nil
}

// tidy trims the converted body and collapses blank-line runs so templated
// siblings with sparse bodies render the same as fully scored ones.
func tidy(md string) string {
	return blankRuns.ReplaceAllString(strings.TrimSpace(md), "\n\n")
}
