package monzo

import (
	"context"
	"net/http"

	"github.com/kbukum/gomonzo/httpclient/rest"
)

const feedItemTypeBasic = "basic"

// feedItemPayload is the JSON body of a feed item. The API expects the
// display params flattened into bracketed top-level keys.
type feedItemPayload struct {
	AccountID       string  `json:"account_id"`
	Type            string  `json:"type"`
	URL             *string `json:"url,omitempty"`
	Title           string  `json:"params[title]"`
	ImageURL        string  `json:"params[image_url]"`
	BackgroundColor *string `json:"params[background_color],omitempty"`
	BodyColor       *string `json:"params[body_color],omitempty"`
	TitleColor      *string `json:"params[title_color],omitempty"`
	Body            *string `json:"params[body],omitempty"`
}

// BasicFeedItemRequest creates a basic item in the account feed.
// Setters return an updated copy; unset optional fields are omitted.
type BasicFeedItemRequest struct {
	client  *Client
	once    sendOnce
	payload feedItemPayload
}

// BasicFeedItem starts a request to add a basic feed item to accountID.
func (c *Client) BasicFeedItem(accountID, title, imageURL string) BasicFeedItemRequest {
	return BasicFeedItemRequest{
		client: c,
		once:   newSendOnce(),
		payload: feedItemPayload{
			AccountID: accountID,
			Type:      feedItemTypeBasic,
			Title:     title,
			ImageURL:  imageURL,
		},
	}
}

// URL is opened when the user taps the item.
func (r BasicFeedItemRequest) URL(url string) BasicFeedItemRequest {
	r.payload.URL = &url
	return r
}

func (r BasicFeedItemRequest) Title(title string) BasicFeedItemRequest {
	r.payload.Title = title
	return r
}

func (r BasicFeedItemRequest) ImageURL(imageURL string) BasicFeedItemRequest {
	r.payload.ImageURL = imageURL
	return r
}

// BackgroundColor takes a hex colour such as "#FCF1EE".
func (r BasicFeedItemRequest) BackgroundColor(color string) BasicFeedItemRequest {
	r.payload.BackgroundColor = &color
	return r
}

func (r BasicFeedItemRequest) BodyColor(color string) BasicFeedItemRequest {
	r.payload.BodyColor = &color
	return r
}

func (r BasicFeedItemRequest) TitleColor(color string) BasicFeedItemRequest {
	r.payload.TitleColor = &color
	return r
}

// Body is the text shown under the title.
func (r BasicFeedItemRequest) Body(body string) BasicFeedItemRequest {
	r.payload.Body = &body
	return r
}

func (r BasicFeedItemRequest) Method() string { return http.MethodPost }

func (r BasicFeedItemRequest) Path() string { return "/feed" }

func (r BasicFeedItemRequest) JSONBody() any { return r.payload }

// Send executes the request. The API returns no data on success.
func (r BasicFeedItemRequest) Send(ctx context.Context) error {
	if err := r.once.claim(); err != nil {
		return err
	}
	_, err := rest.Send[rest.Empty](ctx, r.client.rest, r)
	return err
}
