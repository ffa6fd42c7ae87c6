package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	apiBaseURL = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"

	defaultTimeout   = 30 * time.Second
	childrenPageSize = 100
)

// Client interfaces with the Notion REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new Notion API client authenticated with an integration token.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: apiBaseURL,
		token:   token,
	}
}

// RichText is one run of text inside a property or block.
type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

// Text is the content of a text-typed rich text run.
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is an embedded URL inside a text run.
type Link struct {
	URL string `json:"url"`
}

type pageProperty struct {
	Type     string     `json:"type,omitempty"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
}

type page struct {
	ID         string                  `json:"id"`
	Properties map[string]pageProperty `json:"properties"`
}

type queryRequest struct {
	Filter queryFilter `json:"filter"`
}

type queryFilter struct {
	Property string         `json:"property"`
	RichText containsFilter `json:"rich_text"`
}

type containsFilter struct {
	Contains string `json:"contains"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

type pageParent struct {
	Type   string `json:"type"`
	PageID string `json:"page_id"`
}

type createPageRequest struct {
	Parent     pageParent              `json:"parent"`
	Properties map[string]pageProperty `json:"properties"`
}

type updatePageRequest struct {
	Properties map[string]pageProperty `json:"properties"`
}

type bulletedListItem struct {
	RichText []RichText `json:"rich_text"`
}

type childBlock struct {
	Object           string            `json:"object,omitempty"`
	Type             string            `json:"type"`
	BulletedListItem *bulletedListItem `json:"bulleted_list_item,omitempty"`
}

type appendChildrenRequest struct {
	Children []childBlock `json:"children"`
}

type listChildrenResponse struct {
	Results    []childBlock `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QueryPagesByTitle returns the IDs of pages in a database whose title
// property contains substring, in API-returned order. Matching semantics
// (case sensitivity, ranking) are Notion's.
func (c *Client) QueryPagesByTitle(ctx context.Context, databaseID, property, substring string) ([]string, error) {
	reqBody := queryRequest{
		Filter: queryFilter{
			Property: property,
			RichText: containsFilter{Contains: substring},
		},
	}

	var resp queryResponse
	path := fmt.Sprintf("/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, reqBody, &resp); err != nil {
		return nil, fmt.Errorf("query database: %w", err)
	}

	ids := make([]string, 0, len(resp.Results))
	for _, p := range resp.Results {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// GetLinkURL scans a page's rich-text property for an embedded link and
// returns its URL. The second return value is false when the property is
// absent, empty, or carries no link.
func (c *Client) GetLinkURL(ctx context.Context, pageID, property string) (string, bool, error) {
	var p page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &p); err != nil {
		return "", false, fmt.Errorf("get page: %w", err)
	}

	prop, ok := p.Properties[property]
	if !ok {
		return "", false, nil
	}
	for _, rt := range prop.RichText {
		if rt.Text != nil && rt.Text.Link != nil && rt.Text.Link.URL != "" {
			return rt.Text.Link.URL, true, nil
		}
	}
	return "", false, nil
}

// CreateChildPage creates an empty page with the given title under a parent
// page and returns the new page's identifier.
func (c *Client) CreateChildPage(ctx context.Context, parentID, title string) (string, error) {
	reqBody := createPageRequest{
		Parent: pageParent{Type: "page_id", PageID: parentID},
		Properties: map[string]pageProperty{
			"title": {
				Title: []RichText{
					{Type: "text", Text: &Text{Content: title}},
				},
			},
		},
	}

	var created page
	if err := c.do(ctx, http.MethodPost, "/pages", reqBody, &created); err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}
	return created.ID, nil
}

// SetLink writes a rich-text value displaying text and linking to url into
// a page property, replacing any previous value.
func (c *Client) SetLink(ctx context.Context, pageID, property, text, url string) error {
	reqBody := updatePageRequest{
		Properties: map[string]pageProperty{
			property: {
				Type: "rich_text",
				RichText: []RichText{
					{Type: "text", Text: &Text{Content: text, Link: &Link{URL: url}}},
				},
			},
		},
	}

	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, reqBody, nil); err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// AppendBulletedItem appends one bulleted list item containing text as the
// last child of a block.
func (c *Client) AppendBulletedItem(ctx context.Context, blockID, text string) error {
	reqBody := appendChildrenRequest{
		Children: []childBlock{
			{
				Object: "block",
				Type:   "bulleted_list_item",
				BulletedListItem: &bulletedListItem{
					RichText: []RichText{
						{Type: "text", Text: &Text{Content: text}},
					},
				},
			},
		},
	}

	if err := c.do(ctx, http.MethodPatch, "/blocks/"+blockID+"/children", reqBody, nil); err != nil {
		return fmt.Errorf("append block children: %w", err)
	}
	return nil
}

// ListBulletedItems returns the text of every bulleted list item child of a
// block, in API order, following cursor pagination to the end. Each item's
// rich text runs are concatenated into one string.
func (c *Client) ListBulletedItems(ctx context.Context, blockID string) ([]string, error) {
	var items []string
	cursor := ""

	for {
		path := fmt.Sprintf("/blocks/%s/children?page_size=%d", blockID, childrenPageSize)
		if cursor != "" {
			path += "&start_cursor=" + cursor
		}

		var resp listChildrenResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, fmt.Errorf("list block children: %w", err)
		}

		for _, block := range resp.Results {
			if block.Type != "bulleted_list_item" || block.BulletedListItem == nil {
				continue
			}
			var content string
			for _, rt := range block.BulletedListItem.RichText {
				if rt.Text != nil {
					content += rt.Text.Content
				} else {
					content += rt.PlainText
				}
			}
			items = append(items, content)
		}

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}

	return items, nil
}

// CheckDatabase verifies the token can reach a database and returns the
// database's title.
func (c *Client) CheckDatabase(ctx context.Context, databaseID string) (string, error) {
	var db struct {
		Title []RichText `json:"title"`
	}
	if err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return "", fmt.Errorf("get database: %w", err)
	}

	var title string
	for _, rt := range db.Title {
		if rt.Text != nil {
			title += rt.Text.Content
		} else {
			title += rt.PlainText
		}
	}
	return title, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		var errBody apiErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errBody.Code,
			Message:    errBody.Message,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
