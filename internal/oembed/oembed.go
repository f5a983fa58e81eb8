// Copyright 2026 The Richmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package oembed fetches human-readable titles for embedded media from
// the providers' oEmbed endpoints. Lookups are best effort: callers
// treat every failure as "no title" and fall back to a placeholder.
package oembed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	youtubeEndpoint = "https://www.youtube.com/oembed"
	spotifyEndpoint = "https://open.spotify.com/oembed"
)

// Client queries oEmbed endpoints.
// The zero value is usable and applies a short default timeout.
type Client struct {
	// HTTPClient overrides the HTTP client used for lookups.
	HTTPClient *http.Client

	// Endpoint overrides for tests.
	YouTubeEndpoint string
	SpotifyEndpoint string
}

// VideoTitle returns the title of a YouTube video.
func (c *Client) VideoTitle(ctx context.Context, externalID string) (string, error) {
	endpoint := c.YouTubeEndpoint
	if endpoint == "" {
		endpoint = youtubeEndpoint
	}
	return c.lookup(ctx, endpoint, "https://www.youtube.com/watch?v="+externalID)
}

// AudioTitle returns the title of a Spotify item.
func (c *Client) AudioTitle(ctx context.Context, itemType, itemID string) (string, error) {
	endpoint := c.SpotifyEndpoint
	if endpoint == "" {
		endpoint = spotifyEndpoint
	}
	return c.lookup(ctx, endpoint, "https://open.spotify.com/"+itemType+"/"+itemID)
}

func (c *Client) lookup(ctx context.Context, endpoint, target string) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("oembed lookup: %w", err)
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed lookup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed lookup: %s returned %s", endpoint, resp.Status)
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("oembed lookup: decode response: %w", err)
	}
	return payload.Title, nil
}
