// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const fakePDFContent = "%PDF-1.4 fake"

func TestPDF(t *testing.T) {
	var gotUserAgent, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	data, err := PDF(ts.Client(), ts.URL+"/report.pdf", "tablepull-test/0.1")
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if string(data) != fakePDFContent {
		t.Errorf("body = %q, want %q", string(data), fakePDFContent)
	}
	if gotUserAgent != "tablepull-test/0.1" {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, "tablepull-test/0.1")
	}
	if gotAccept != "application/pdf" {
		t.Errorf("Accept = %q, want %q", gotAccept, "application/pdf")
	}
}

func TestPDFNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	_, err := PDF(ts.Client(), ts.URL+"/missing.pdf", "tablepull-test/0.1")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error = %q, want mention of HTTP 404", err.Error())
	}
}

func TestPDFNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := PDF(http.DefaultClient, url, "tablepull-test/0.1")
	if err == nil {
		t.Fatal("expected error for closed server")
	}
}
