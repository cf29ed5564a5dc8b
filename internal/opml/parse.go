package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"lemmyopml/internal/domain"
)

// Parse reads the OPML file at path. See Decode.
func Parse(path string) ([]domain.Community, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an OPML document and returns the communities its leaves
// describe, flattening any category grouping onto each leaf's Category.
// Leaves that identify no community are skipped and counted, never fatal.
func Decode(r io.Reader) ([]domain.Community, int, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	var communities []domain.Community
	skipped := 0
	walk(doc.Body.Outlines, "", func(o Outline, category string) {
		c, ok := communityFromOutline(o)
		if !ok {
			skipped++
			return
		}
		c.Category = category
		communities = append(communities, c)
	})
	return communities, skipped, nil
}

// walk visits every non-category outline, carrying down the text of the
// innermost enclosing category node.
func walk(outlines []Outline, category string, visit func(Outline, string)) {
	for _, o := range outlines {
		if o.Type == "category" {
			walk(o.Outlines, o.Text, visit)
			continue
		}
		visit(o, category)
	}
}

// communityFromOutline tries the htmlUrl attribute first, then falls back
// to the feed URL in xmlUrl.
func communityFromOutline(o Outline) (domain.Community, bool) {
	if c, err := domain.CommunityFromURL(o.HTMLURL); err == nil {
		c.Title = o.Title
		return c, true
	}
	if c, err := domain.CommunityFromFeedURL(o.XMLURL); err == nil {
		c.Title = o.Title
		return c, true
	}
	return domain.Community{}, false
}
