package formrules

import (
	"github.com/valyala/fasthttp"
)

const defaultMaxRequestSize int64 = 10485760 // 10MB

type handlerOptions struct {
	errHandler     ErrorHandler
	logger         Logger
	maxRequestSize int64
	parsers        []BodyParser
	checkOrigin    func(ctx *fasthttp.RequestCtx) bool
}

func defaultHandlerOptions() *handlerOptions {
	return &handlerOptions{
		errHandler:     DefaultErrorHandler,
		logger:         NewSlogLogger(nil),
		maxRequestSize: defaultMaxRequestSize,
		parsers:        []BodyParser{&JSONBodyParser{}, &FormBodyParser{}},
	}
}

func newHandlerOptions(opts []Option) *handlerOptions {
	o := defaultHandlerOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *handlerOptions) parserFor(contentType string) BodyParser {
	for _, p := range o.parsers {
		if p.Match(contentType) {
			return p
		}
	}
	return nil
}

type Option func(o *handlerOptions)

// WithErrorHandler replaces the function that turns transport errors into a status
// code and response body.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *handlerOptions) {
		if h != nil {
			o.errHandler = h
		}
	}
}

func WithLogger(l Logger) Option {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxRequestSize caps request bodies and websocket frames, in bytes.
func WithMaxRequestSize(n int64) Option {
	return func(o *handlerOptions) {
		if n > 0 {
			o.maxRequestSize = n
		}
	}
}

// WithBodyParsers replaces the body parsers. The first parser whose Match accepts the
// request's Content-Type decodes it.
func WithBodyParsers(parsers ...BodyParser) Option {
	return func(o *handlerOptions) {
		o.parsers = parsers
	}
}

// WithCheckOrigin sets the origin check LiveHandler runs before upgrading. Without it
// only same-origin requests and requests with no Origin header are upgraded.
func WithCheckOrigin(fn func(ctx *fasthttp.RequestCtx) bool) Option {
	return func(o *handlerOptions) {
		o.checkOrigin = fn
	}
}
