package media

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"wol-api/internal/apperr"
	"wol-api/internal/upstream"
)

const source = "mediator"

type mediatorClient struct {
	baseURL string
	up      *upstream.Client
}

func NewMediatorClient(baseURL string, up *upstream.Client) ItemFetcher {
	return &mediatorClient{
		baseURL: baseURL,
		up:      up,
	}
}

func (c *mediatorClient) FetchItem(ctx context.Context, language, id string) (MediatorResponse, error) {
	resp, err := c.up.Get(ctx, source, ItemURL(c.baseURL, language, id))
	if err != nil {
		return MediatorResponse{}, err
	}
	defer resp.Body.Close()

	var out MediatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return MediatorResponse{}, &apperr.ParseError{Source: source, Err: err}
	}
	return out, nil
}

// ItemURL example "https://b.jw-cdn.org/apis/mediator/v1/media-items/E/pub-jwb_201812_1_VIDEO?clientType=www"
func ItemURL(baseURL, language, id string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(language) + "/" + url.PathEscape(id) + "?clientType=www"
}
