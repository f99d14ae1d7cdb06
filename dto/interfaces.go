package dto

import (
	"context"
)

type FetchInterface interface {
	Hydrate(ctx context.Context) error
	State() *FetchState
	RegisterTransport(ref string, transport Transport)
	Fetch(ctx context.Context, method Method, path string, params any, opts ...Options) (*Result, error)
	Get(ctx context.Context, path string, params any, opts ...Options) (*Result, error)
	Post(ctx context.Context, path string, params any, opts ...Options) (*Result, error)
	Put(ctx context.Context, path string, params any, opts ...Options) (*Result, error)
	Patch(ctx context.Context, path string, params any, opts ...Options) (*Result, error)
	Del(ctx context.Context, path string, params any, opts ...Options) (*Result, error)
}

// AuthProvider defines methods for non-OAuth authentication schemes.
// Returned TokenInfo may include cookies or access tokens.
type AuthProvider interface {
	Authenticate(ctx context.Context) (TokenInfo, error)
	Refresh(ctx context.Context, old TokenInfo) (TokenInfo, error)
}

// Transport performs the actual network exchange for a shaped Request.
// Implementations must not interpret the status code; that is the
// normalizer's job.
type Transport interface {
	Ref() string
	Type() TransportType
	Do(ctx context.Context, req *Request) (RawResponse, error)
}

// TransportFunc adapts a plain function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (RawResponse, error)

func (f TransportFunc) Ref() string         { return "func" }
func (f TransportFunc) Type() TransportType { return TRANSPORT_FUNC }
func (f TransportFunc) Do(ctx context.Context, req *Request) (RawResponse, error) {
	return f(ctx, req)
}

// RawResponse is the transport's view of a response before normalization.
// JSON and Text may read or decode lazily and therefore take a context.
type RawResponse interface {
	Status() int
	Header(key string) string
	JSON(ctx context.Context) (any, error)
	Text(ctx context.Context) (string, error)
}

// Executor schedules asynchronous dispatches.
type Executor interface {
	Go(task func())
}

type ExecutorFunc func(task func())

func (f ExecutorFunc) Go(task func()) { f(task) }

var (
	// GoroutineExecutor runs every task on its own goroutine.
	GoroutineExecutor Executor = ExecutorFunc(func(task func()) { go task() })
	// InlineExecutor runs the task on the calling goroutine.
	InlineExecutor Executor = ExecutorFunc(func(task func()) { task() })
)
