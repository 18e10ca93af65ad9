// Package devkit provides scripted test doubles for the transport layers:
// an http-level fake client and a wire-agnostic fake adapter.
package devkit

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// HTTPScript describes one canned exchange. Err, when set, simulates a
// network failure where no response was received.
type HTTPScript struct {
	Status  int
	Headers map[string]string
	Body    string
	Err     error
}

// RecordedRequest captures what the client actually sent, body drained.
type RecordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// FakeHTTPClient replays scripts in order, repeating the last one once the
// script runs out, and records every request it saw.
type FakeHTTPClient struct {
	mu       sync.Mutex
	scripts  []HTTPScript
	requests []RecordedRequest
}

func NewFakeHTTPClient(scripts ...HTTPScript) *FakeHTTPClient {
	return &FakeHTTPClient{scripts: append([]HTTPScript(nil), scripts...)}
}

func (c *FakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	c.requests = append(c.requests, RecordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	})

	index := len(c.requests) - 1
	script := HTTPScript{Status: http.StatusOK}
	if index < len(c.scripts) {
		script = c.scripts[index]
	} else if len(c.scripts) > 0 {
		script = c.scripts[len(c.scripts)-1]
	}
	if script.Err != nil {
		return nil, script.Err
	}

	header := http.Header{}
	for key, value := range script.Headers {
		header.Set(key, value)
	}
	status := script.Status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader([]byte(script.Body))),
		Request:    req,
	}, nil
}

// Requests returns a copy of everything sent so far.
func (c *FakeHTTPClient) Requests() []RecordedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RecordedRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

// CallCount reports how many requests reached the fake.
func (c *FakeHTTPClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}
