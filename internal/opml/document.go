package opml

import "encoding/xml"

// Document is an OPML 2.0 file.
type Document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    *Head    `xml:"head,omitempty"`
	Body    Body     `xml:"body"`
}

// Head carries optional document metadata.
type Head struct {
	Title       string `xml:"title,omitempty"`
	DateCreated string `xml:"dateCreated,omitempty"`
	OwnerName   string `xml:"ownerName,omitempty"`
	OwnerID     string `xml:"ownerId,omitempty"`
}

// Body holds the outline tree.
type Body struct {
	Outlines []Outline `xml:"outline"`
}

// Outline is one node of the tree. Leaves describe a subscription; nodes
// with Type "category" group the leaves below them.
type Outline struct {
	Type        string    `xml:"type,attr,omitempty"`
	Text        string    `xml:"text,attr"`
	Title       string    `xml:"title,attr,omitempty"`
	Description string    `xml:"description,attr,omitempty"`
	XMLURL      string    `xml:"xmlUrl,attr,omitempty"`
	HTMLURL     string    `xml:"htmlUrl,attr,omitempty"`
	Outlines    []Outline `xml:"outline,omitempty"`
}
