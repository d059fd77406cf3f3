package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cineflow/catalogd/internal/errors"
)

func (s *Catalog) searchURL(searchTerm string, page int) string {
	return fmt.Sprintf("%s/api/posts?searchTerm=%s&page=%d&limit=%d&order=desc",
		s.baseURL, url.QueryEscape(searchTerm), page, s.pageSize)
}

func (s *Catalog) categoryPostsURL(categoryID string, page int) string {
	return fmt.Sprintf("%s/api/posts?categoryExact=%s&page=%d&order=desc&limit=%d",
		s.baseURL, url.QueryEscape(categoryID), page, s.pageSize)
}

// getJSON performs a rate-limited GET and decodes the 200 response into out.
// Any non-2xx status is an upstream failure; an undecodable body is a
// malformed-response failure.
func (s *Catalog) getJSON(ctx context.Context, apiURL string, out interface{}) error {
	resp, err := s.doGet(ctx, apiURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewUpstreamError(fmt.Sprintf("upstream returned status %d for %s", resp.StatusCode, apiURL), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewMalformedResponseError(fmt.Sprintf("failed to decode response from %s", apiURL), err)
	}
	return nil
}

// getJSONNotFound is getJSON with a 404 mapped to a post-not-found error so
// the detail path can distinguish missing posts from upstream outages.
func (s *Catalog) getJSONNotFound(ctx context.Context, apiURL string, out interface{}, postID string) error {
	resp, err := s.doGet(ctx, apiURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewPostNotFoundError(postID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewUpstreamError(fmt.Sprintf("upstream returned status %d for %s", resp.StatusCode, apiURL), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewMalformedResponseError(fmt.Sprintf("failed to decode response from %s", apiURL), err)
	}
	return nil
}

func (s *Catalog) doGet(ctx context.Context, apiURL string) (*http.Response, error) {
	s.rateLimiter.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, errors.NewUpstreamError(fmt.Sprintf("failed to build request for %s", apiURL), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError(fmt.Sprintf("request to %s failed", apiURL), err)
	}
	return resp, nil
}
