package lemmy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"lemmyopml/internal/domain"
)

const (
	apiVersion = "v3"

	// pageSize is the listing page size; a shorter page ends pagination.
	pageSize = 50
)

// Client talks JSON over HTTPS to one Lemmy instance.
type Client struct {
	Base string // https://<instance>, no trailing slash
	HTTP *http.Client
}

// New returns a client for the given instance. A bare hostname or an
// http:// URL is upgraded to https.
func New(instance string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: ToHTTPS(instance), HTTP: httpClient}
}

// ToHTTPS normalizes an instance reference to an https:// base URL.
func ToHTTPS(instance string) string {
	instance = strings.TrimSuffix(instance, "/")
	switch {
	case strings.HasPrefix(instance, "https://"):
		return instance
	case strings.HasPrefix(instance, "http://"):
		return "https://" + strings.TrimPrefix(instance, "http://")
	default:
		return "https://" + instance
	}
}

// Instance returns the host part of the base URL.
func (c *Client) Instance() string {
	return strings.TrimPrefix(c.Base, "https://")
}

// UserHandle is the federated reference for a user at this instance,
// in the form @user@instance.
func (c *Client) UserHandle(username string) string {
	return fmt.Sprintf("@%s@%s", username, c.Instance())
}

// UserURL is the profile URL for a user at this instance.
func (c *Client) UserURL(username string) string {
	return c.Base + "/u/" + url.PathEscape(username)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(username, password string) (domain.Token, error) {
	in := struct {
		UsernameOrEmail string `json:"username_or_email"`
		Password        string `json:"password"`
	}{username, password}
	var out struct {
		JWT string `json:"jwt"`
	}
	if err := c.post("/user/login", in, &out); err != nil {
		return "", fmt.Errorf("%w: user %s at %s: %v", domain.ErrAuthentication, username, c.Base, err)
	}
	if out.JWT == "" {
		return "", fmt.Errorf("%w: login response from %s carried no token", domain.ErrAuthentication, c.Base)
	}
	return domain.Token(out.JWT), nil
}

// communityView is the wire shape the API wraps around a community.
type communityView struct {
	Community struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ActorID     string `json:"actor_id"`
	} `json:"community"`
}

func (v communityView) domain() (domain.Community, error) {
	c, err := domain.CommunityFromURL(v.Community.ActorID)
	if err != nil {
		return domain.Community{}, err
	}
	c.ID = v.Community.ID
	c.Title = v.Community.Title
	c.Description = v.Community.Description
	return c, nil
}

// SubscribedCommunities lists every community the token's user follows,
// walking pages until a short one. A failed page discards all prior pages.
func (c *Client) SubscribedCommunities(token domain.Token) ([]domain.Community, error) {
	var all []domain.Community
	for page := 1; ; page++ {
		q := url.Values{
			"type_": {"Subscribed"},
			"limit": {strconv.Itoa(pageSize)},
			"page":  {strconv.Itoa(page)},
			"auth":  {string(token)},
		}
		var out struct {
			Communities []communityView `json:"communities"`
		}
		if err := c.getJSON("/community/list?"+q.Encode(), &out); err != nil {
			return nil, fmt.Errorf("%w: page %d from %s: %v", domain.ErrFetch, page, c.Base, err)
		}
		for _, v := range out.Communities {
			dc, err := v.domain()
			if err != nil {
				// Federation sometimes produces actor_ids we cannot place.
				continue
			}
			all = append(all, dc)
		}
		if len(out.Communities) < pageSize {
			return all, nil
		}
	}
}

// Resolve fills in the numeric community id via the instance's resolver.
func (c *Client) Resolve(token domain.Token, community domain.Community) (domain.Community, error) {
	q := url.Values{
		"q":    {community.URL(domain.SortOrder{})},
		"auth": {string(token)},
	}
	var out struct {
		Community communityView `json:"community"`
	}
	if err := c.getJSON("/resolve_object?"+q.Encode(), &out); err != nil {
		return domain.Community{}, fmt.Errorf("%w: resolve %s: %v", domain.ErrSubscribe, community.Ref(), err)
	}
	resolved, err := out.Community.domain()
	if err != nil {
		return domain.Community{}, fmt.Errorf("%w: resolve %s: %v", domain.ErrSubscribe, community.Ref(), err)
	}
	resolved.Category = community.Category
	return resolved, nil
}

// Subscribe follows the community, resolving its id first when unknown.
func (c *Client) Subscribe(token domain.Token, community domain.Community) error {
	if community.ID == 0 {
		resolved, err := c.Resolve(token, community)
		if err != nil {
			return err
		}
		community = resolved
	}
	in := struct {
		CommunityID int64  `json:"community_id"`
		Follow      bool   `json:"follow"`
		Auth        string `json:"auth"`
	}{community.ID, true, string(token)}
	if err := c.post("/community/follow", in, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrSubscribe, community.Ref(), err)
	}
	return nil
}

func (c *Client) api(path string) string {
	return c.Base + "/api/" + apiVersion + path
}

func (c *Client) post(path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.api(path), buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.api(path), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.Client = (*Client)(nil)
