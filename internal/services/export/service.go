package export

import (
	"log"

	"lemmyopml/internal/domain"
	"lemmyopml/internal/opml"
)

// Service exports a user's subscriptions to an OPML file.
type Service struct {
	client domain.Client
	log    *log.Logger
}

// New returns an export service using the given API client.
func New(client domain.Client, logger *log.Logger) *Service {
	return &Service{client: client, log: logger}
}

// Run fetches the subscribed communities and writes them to path.
// It returns the number of communities exported. A fetch failure
// surfaces nothing partial; nothing is written.
func (s *Service) Run(token domain.Token, path string, opts opml.Options, overwrite bool) (int, error) {
	communities, err := s.client.SubscribedCommunities(token)
	if err != nil {
		return 0, err
	}
	s.log.Printf("fetched %d subscribed communities", len(communities))

	doc := opml.Build(communities, opts)
	if err := opml.Write(path, doc, overwrite); err != nil {
		return 0, err
	}
	s.log.Printf("exported %d communities to %s", len(communities), path)
	return len(communities), nil
}
