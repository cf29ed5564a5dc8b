package export_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lemmyopml/internal/domain"
	"lemmyopml/internal/opml"
	"lemmyopml/internal/services/export"
)

// fakeClient serves a fixed community list, or an error.
type fakeClient struct {
	communities []domain.Community
	fetchErr    error
}

func (f *fakeClient) Login(username, password string) (domain.Token, error) {
	return "tok", nil
}

func (f *fakeClient) SubscribedCommunities(domain.Token) ([]domain.Community, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.communities, nil
}

func (f *fakeClient) Resolve(_ domain.Token, c domain.Community) (domain.Community, error) {
	return c, nil
}

func (f *fakeClient) Subscribe(domain.Token, domain.Community) error { return nil }

var _ domain.Client = (*fakeClient)(nil)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRunWritesDocument(t *testing.T) {
	client := &fakeClient{communities: []domain.Community{
		{Instance: "lemmy.ml", Name: "golang"},
		{Instance: "lemmy.world", Name: "news"},
	}}
	svc := export.New(client, discard())
	path := filepath.Join(t.TempDir(), "subs.opml")

	n, err := svc.Run("tok", path, opml.Options{}, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	cs, skipped, err := opml.Parse(path)
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, cs, 2)
	require.Equal(t, "golang", cs[0].Name)
}

func TestRunFetchFailureWritesNothing(t *testing.T) {
	client := &fakeClient{fetchErr: fmt.Errorf("%w: boom", domain.ErrFetch)}
	svc := export.New(client, discard())
	path := filepath.Join(t.TempDir(), "subs.opml")

	_, err := svc.Run("tok", path, opml.Options{}, false)
	require.ErrorIs(t, err, domain.ErrFetch)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestRunRespectsOverwriteGuard(t *testing.T) {
	client := &fakeClient{communities: []domain.Community{{Instance: "lemmy.ml", Name: "golang"}}}
	svc := export.New(client, discard())
	path := filepath.Join(t.TempDir(), "subs.opml")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	_, err := svc.Run("tok", path, opml.Options{}, false)
	require.ErrorIs(t, err, domain.ErrWrite)

	b, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "keep me", string(b))

	n, err := svc.Run("tok", path, opml.Options{}, true)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
