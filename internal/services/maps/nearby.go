package maps

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

var (
	_ interfaces.PlaceSearcher   = (*Client)(nil)
	_ interfaces.PhotoURLBuilder = (*Client)(nil)
)

// NearbySearch issues a single Nearby Search call. A continuation request
// carries only the page token; the provider rejects mixed parameters.
func (c *Client) NearbySearch(ctx context.Context, req models.NearbySearchRequest) (*models.SearchPage, error) {
	params := url.Values{}
	if req.PageToken != "" {
		params.Set("pagetoken", req.PageToken)
	} else {
		params.Set("location", req.Location.String())
		params.Set("radius", strconv.Itoa(req.Radius))
		params.Set("type", req.Type)
		if req.Keyword != "" {
			params.Set("keyword", req.Keyword)
		}
	}

	var resp PlacesNearbySearchResponse
	if err := c.get(ctx, "nearbysearch", "/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}

	page := &models.SearchPage{
		Status:        resp.Status,
		NextPageToken: resp.NextPageToken,
		Results:       make([]models.RawPlace, 0, len(resp.Results)),
	}
	for _, result := range resp.Results {
		page.Results = append(page.Results, convertToRawPlace(result))
	}

	return page, nil
}

// PhotoURL returns the photo retrieval URL for a photo reference, or "" when the reference is empty
func (c *Client) PhotoURL(reference string, maxWidth int) string {
	if reference == "" {
		return ""
	}
	return fmt.Sprintf("%s/place/photo?maxwidth=%d&photoreference=%s&key=%s",
		c.baseURL, maxWidth, url.QueryEscape(reference), url.QueryEscape(c.apiKey))
}
