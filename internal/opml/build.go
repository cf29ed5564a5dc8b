package opml

import (
	"time"

	"lemmyopml/internal/domain"
)

// Options control what Build places in the document.
type Options struct {
	Categories bool   // nest leaves under one category outline per group
	Title      string // head title
	OwnerName  string // head ownerName, e.g. @user@instance
	OwnerID    string // head ownerId, the user's profile URL
	Date       bool   // stamp head dateCreated with the current time
	Sort       domain.SortOrder

	Now func() time.Time // overrides time.Now; used by tests
}

// Build renders the communities as an OPML document. With Categories set,
// each leaf nests under a category outline keyed by the community's
// Category label (its home instance when unlabelled); groups appear in
// first-seen order, as does everything within them.
func Build(communities []domain.Community, opts Options) *Document {
	doc := &Document{Version: "2.0"}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	head := Head{Title: opts.Title, OwnerName: opts.OwnerName, OwnerID: opts.OwnerID}
	if opts.Date {
		head.DateCreated = now().Format(time.RFC1123Z)
	}
	if head != (Head{}) {
		doc.Head = &head
	}

	if !opts.Categories {
		for _, c := range communities {
			doc.Body.Outlines = append(doc.Body.Outlines, leaf(c, opts.Sort))
		}
		return doc
	}

	index := make(map[string]int)
	for _, c := range communities {
		key := c.Category
		if key == "" {
			key = c.Instance
		}
		i, ok := index[key]
		if !ok {
			i = len(doc.Body.Outlines)
			index[key] = i
			doc.Body.Outlines = append(doc.Body.Outlines, Outline{Type: "category", Text: key})
		}
		doc.Body.Outlines[i].Outlines = append(doc.Body.Outlines[i].Outlines, leaf(c, opts.Sort))
	}
	return doc
}

func leaf(c domain.Community, sort domain.SortOrder) Outline {
	return Outline{
		Type:        "rss",
		Text:        c.Ref(),
		Title:       c.Title,
		Description: c.Description,
		XMLURL:      c.FeedURL(sort),
		HTMLURL:     c.URL(sort),
	}
}
