package opml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lemmyopml/internal/domain"
	"lemmyopml/internal/opml"
)

func sample() []domain.Community {
	return []domain.Community{
		{Instance: "lemmy.ml", Name: "golang", Title: "Go"},
		{Instance: "lemmy.ml", Name: "linux", Title: "Linux"},
		{Instance: "lemmy.world", Name: "news", Title: "News"},
	}
}

// pairs reduces communities to the (instance, name) identity the
// round-trip must preserve.
func pairs(cs []domain.Community) [][2]string {
	out := make([][2]string, len(cs))
	for i, c := range cs {
		out[i] = [2]string{c.Instance, c.Name}
	}
	return out
}

func writeAndParse(t *testing.T, doc *opml.Document) ([]domain.Community, int) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subs.opml")
	require.NoError(t, opml.Write(path, doc, false))
	cs, skipped, err := opml.Parse(path)
	require.NoError(t, err)
	return cs, skipped
}

func TestRoundTripFlat(t *testing.T) {
	in := sample()
	got, skipped := writeAndParse(t, opml.Build(in, opml.Options{}))
	require.Zero(t, skipped)
	require.Equal(t, pairs(in), pairs(got))
}

func TestRoundTripGrouped(t *testing.T) {
	in := sample()
	got, skipped := writeAndParse(t, opml.Build(in, opml.Options{Categories: true}))
	require.Zero(t, skipped)
	require.Equal(t, pairs(in), pairs(got))

	// The flattened entries recover their group label.
	require.Equal(t, "lemmy.ml", got[0].Category)
	require.Equal(t, "lemmy.world", got[2].Category)
}

func TestGroupingFirstSeenOrder(t *testing.T) {
	in := []domain.Community{
		{Instance: "a.example", Name: "one", Category: "tech"},
		{Instance: "b.example", Name: "two", Category: "tech"},
		{Instance: "c.example", Name: "three", Category: "news"},
	}
	doc := opml.Build(in, opml.Options{Categories: true})

	require.Len(t, doc.Body.Outlines, 2)
	require.Equal(t, "category", doc.Body.Outlines[0].Type)
	require.Equal(t, "tech", doc.Body.Outlines[0].Text)
	require.Len(t, doc.Body.Outlines[0].Outlines, 2)
	require.Equal(t, "!one@a.example", doc.Body.Outlines[0].Outlines[0].Text)
	require.Equal(t, "!two@b.example", doc.Body.Outlines[0].Outlines[1].Text)
	require.Equal(t, "news", doc.Body.Outlines[1].Text)
	require.Len(t, doc.Body.Outlines[1].Outlines, 1)
}

func TestGroupingFallsBackToInstance(t *testing.T) {
	doc := opml.Build(sample(), opml.Options{Categories: true})
	require.Len(t, doc.Body.Outlines, 2)
	require.Equal(t, "lemmy.ml", doc.Body.Outlines[0].Text)
	require.Equal(t, "lemmy.world", doc.Body.Outlines[1].Text)
}

func TestHeadMetadata(t *testing.T) {
	stamp := time.Date(2023, 8, 1, 12, 0, 0, 0, time.UTC)
	doc := opml.Build(nil, opml.Options{
		Title:     "My subs",
		OwnerName: "@alice@lemmy.ml",
		OwnerID:   "https://lemmy.ml/u/alice",
		Date:      true,
		Now:       func() time.Time { return stamp },
	})
	require.NotNil(t, doc.Head)
	require.Equal(t, "My subs", doc.Head.Title)
	require.Equal(t, "@alice@lemmy.ml", doc.Head.OwnerName)
	require.Equal(t, "https://lemmy.ml/u/alice", doc.Head.OwnerID)
	require.Equal(t, stamp.Format(time.RFC1123Z), doc.Head.DateCreated)
}

func TestNoHeadWhenEmpty(t *testing.T) {
	doc := opml.Build(sample(), opml.Options{})
	require.Nil(t, doc.Head)
}

func TestDecodeSkipsMalformedLeaves(t *testing.T) {
	in := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <body>
    <outline type="rss" text="!golang@lemmy.ml" xmlUrl="https://lemmy.ml/feeds/c/golang.xml" htmlUrl="https://lemmy.ml/c/golang"></outline>
    <outline type="rss" text="broken"></outline>
    <outline type="rss" text="!linux@lemmy.ml" xmlUrl="https://lemmy.ml/feeds/c/linux.xml"></outline>
  </body>
</opml>`
	cs, skipped, err := opml.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, skipped)
	require.Len(t, cs, 2)
	require.Equal(t, "golang", cs[0].Name)
	require.Equal(t, "linux", cs[1].Name)
}

func TestDecodeFeedURLFallback(t *testing.T) {
	in := `<opml version="2.0"><body>
    <outline type="rss" text="!golang@lemmy.ml" xmlUrl="https://lemmy.ml/feeds/c/golang.xml"/>
  </body></opml>`
	cs, skipped, err := opml.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, cs, 1)
	require.Equal(t, "lemmy.ml", cs[0].Instance)
	require.Equal(t, "golang", cs[0].Name)
}

func TestDecodeMalformedDocument(t *testing.T) {
	_, _, err := opml.Decode(strings.NewReader("not xml at all"))
	require.ErrorIs(t, err, domain.ErrParse)
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := opml.Parse(filepath.Join(t.TempDir(), "nope.opml"))
	require.ErrorIs(t, err, domain.ErrParse)
}

func TestWriteRefusesToClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.opml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	doc := opml.Build(sample(), opml.Options{})
	err := opml.Write(path, doc, false)
	require.ErrorIs(t, err, domain.ErrWrite)

	require.NoError(t, opml.Write(path, doc, true))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "<opml")
}
