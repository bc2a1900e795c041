// Package connection carries methods to the database: it renders a method into an HTTP request,
// sends it and interprets the response into the method's result.
package connection

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"arangodoc/internal/content"
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

// Transport sends a rendered request and returns the raw response. A failure to complete the
// exchange is reported as a *protocol.TransportError; any status is a response.
type Transport interface {
	Send(ctx context.Context, req *Request) (*protocol.Response, error)
}

// Request is a method rendered for the wire.
type Request struct {
	Operation method.Operation
	Method    string
	Path      string
	Query     url.Values
	Header    http.Header
	Body      []byte
}

// Render renders m into a Request. It only fails when the content cannot be encoded.
func Render(m method.Prepare) (*Request, error) {
	verb, err := httpMethod(m.Operation())
	if err != nil {
		return nil, &protocol.TransportError{Op: "encode", Err: err}
	}

	req := &Request{
		Operation: m.Operation(),
		Method:    verb,
		Path:      m.Path(),
		Query:     m.Parameters().Values(),
		Header:    make(http.Header),
	}
	for name, value := range m.Header() {
		req.Header.Set(name, value)
	}

	if c := m.Content(); c != nil {
		body, err := content.Encode(c)
		if err != nil {
			return nil, &protocol.TransportError{Op: "encode", Err: err}
		}
		req.Body = body
	}
	return req, nil
}

// Execute renders m, sends it with t and decodes the response into the result of m.
//
// Execute makes exactly one call and never retries: whether a call can be repeated safely is
// for the caller to decide.
func Execute[R any](ctx context.Context, t Transport, m method.Method[R]) (R, error) {
	var zero R

	req, err := Render(m)
	if err != nil {
		return zero, err
	}

	res, err := t.Send(ctx, req)
	if err != nil {
		return zero, err
	}

	raw, err := protocol.Interpret(res, m.ReturnType())
	if err != nil {
		return zero, err
	}
	return m.DecodeResult(res, raw)
}

func httpMethod(op method.Operation) (string, error) {
	switch op {
	case method.Read:
		return http.MethodGet, nil
	case method.ReadHeader:
		return http.MethodHead, nil
	case method.Create:
		return http.MethodPost, nil
	case method.Replace:
		return http.MethodPut, nil
	case method.Modify:
		return http.MethodPatch, nil
	case method.Delete:
		return http.MethodDelete, nil
	default:
		return "", fmt.Errorf("unsupported operation %s", op)
	}
}
