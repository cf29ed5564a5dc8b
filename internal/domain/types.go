package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Token is the session JWT returned by a successful login. It lives in
// process memory for one invocation and is never persisted.
type Token string

// Community is a single federated community a user can subscribe to.
// Instance is the community's home instance, which may differ from the
// instance the user is registered at.
type Community struct {
	Instance    string
	Name        string
	ID          int64 // API community id; zero until resolved
	Title       string
	Description string
	Category    string // grouping label recovered from a category outline
	Kbin        bool   // the community is a kbin magazine (/m/ path)
}

// Ref returns the textual reference in the form !name@instance.
func (c Community) Ref() string { return fmt.Sprintf("!%s@%s", c.Name, c.Instance) }

// URL returns the HTML page URL for the community. This matches the
// actor_id the API uses to identify the community.
func (c Community) URL(sort SortOrder) string {
	u := url.URL{Scheme: "https", Host: c.Instance}
	if c.Kbin {
		u.Path = "/m/" + c.Name
		if sort.Kbin != "" {
			u.Path += "/" + sort.Kbin
		}
		return u.String()
	}
	u.Path = "/c/" + c.Name
	if sort.Lemmy != "" {
		u.RawQuery = url.Values{"sort": {sort.Lemmy}}.Encode()
	}
	return u.String()
}

// FeedURL returns the RSS feed URL for the community on its home instance.
func (c Community) FeedURL(sort SortOrder) string {
	u := url.URL{Scheme: "https", Host: c.Instance}
	if c.Kbin {
		// kbin feeds do not take a sort parameter.
		u.Path = "/rss"
		u.RawQuery = url.Values{"magazine": {c.Name}}.Encode()
		return u.String()
	}
	u.Path = "/feeds/c/" + c.Name + ".xml"
	if sort.Lemmy != "" {
		u.RawQuery = url.Values{"sort": {sort.Lemmy}}.Encode()
	}
	return u.String()
}

// CommunityFromURL parses a community page URL such as
// https://lemmy.ml/c/golang or https://kbin.social/m/golang.
func CommunityFromURL(raw string) (Community, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Community{}, fmt.Errorf("parse community URL %q: %w", raw, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if u.Host == "" || len(parts) < 2 || parts[1] == "" {
		return Community{}, fmt.Errorf("not a community URL: %s", raw)
	}
	switch parts[0] {
	case "c":
		return Community{Instance: u.Host, Name: parts[1]}, nil
	case "m":
		return Community{Instance: u.Host, Name: parts[1], Kbin: true}, nil
	}
	return Community{}, fmt.Errorf("not a community URL: %s", raw)
}

// CommunityFromFeedURL parses an RSS feed URL in the form
// https://<instance>/feeds/c/<name>.xml.
func CommunityFromFeedURL(raw string) (Community, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Community{}, fmt.Errorf("parse feed URL %q: %w", raw, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if u.Host == "" || len(parts) < 3 || parts[0] != "feeds" || parts[1] != "c" {
		return Community{}, fmt.Errorf("not a community feed URL: %s", raw)
	}
	name := strings.TrimSuffix(parts[2], path.Ext(parts[2]))
	if name == "" {
		return Community{}, fmt.Errorf("not a community feed URL: %s", raw)
	}
	return Community{Instance: u.Host, Name: name}, nil
}

// CommunityFromRef parses the !name@instance form.
func CommunityFromRef(ref string) (Community, error) {
	if !strings.HasPrefix(ref, "!") {
		return Community{}, fmt.Errorf("invalid community reference: %s", ref)
	}
	name, instance, ok := strings.Cut(ref[1:], "@")
	if !ok || name == "" || instance == "" {
		return Community{}, fmt.Errorf("invalid community reference: %s", ref)
	}
	return Community{Instance: instance, Name: name}, nil
}
