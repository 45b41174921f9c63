package barter

import (
	"fmt"
	"sort"
	"strings"
)

// Query modifiers, given after a "?" in the query path.
const (
	// KeyQueryMod looks up the exact key given as data.
	KeyQueryMod = ""
	// PrefixQueryMod returns everything under the key prefix given as data.
	PrefixQueryMod = "prefix"
)

// Model is a key and the value stored under it.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers the queries of one path.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds handlers to a router.
type QueryRegister func(QueryRouter)

// QueryRouter maps query paths such as "/offers" or "/offers/taker" to
// their handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler, 16)}
}

// RegisterAll registers a number of QueryRegister at once
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds h under path. A missing leading slash is added. Registering
// a path twice panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	path = normalizePath(path)
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[normalizePath(path)]
}

// Route splits a full query path such as "/items?prefix" into its handler
// and modifier. ok is false when no handler serves the path.
func (r QueryRouter) Route(fullPath string) (h QueryHandler, mod string, ok bool) {
	path := fullPath
	if i := strings.IndexByte(fullPath, '?'); i >= 0 {
		path, mod = fullPath[:i], fullPath[i+1:]
	}
	h = r.Handler(path)
	return h, mod, h != nil
}

// Paths lists the registered paths in order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
