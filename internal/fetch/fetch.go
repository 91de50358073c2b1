// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the source PDF into memory.
package fetch

import (
	"fmt"
	"io"
	"net/http"
)

// PDF performs a single GET request for url and returns the response body.
// The whole document is buffered in memory: one document per run keeps the
// fetch path simple, and the buffer is handed to the extractor without ever
// being persisted. Any network failure or non-2xx status is an error; there
// is no retry.
func PDF(client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}
