package http

import (
	"context"
	"time"
)

// IClient fetches remote resources for the image loader.
type IClient interface {
	DoHTTPRequest(ctx context.Context, requestParam *RequestParam) error
}

// RequestParam describes one request.
//
// Body may be nil, an io.Reader, a []byte or any JSON-marshalable value.
// Response may be nil, a *[]byte that receives the raw body, or a pointer
// the JSON body is decoded into.
type RequestParam struct {
	RequestURI string
	Method     string
	Header     map[string]string
	Body       interface{}
	Response   interface{}

	Timeout time.Duration
}
