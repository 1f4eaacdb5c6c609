// Package urlbuilder derives the canonical wallpaper URL from a parameter set.
package urlbuilder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/wallpanel/internal/model"
)

// BasePath is the path of the rendering endpoint.
const BasePath = "/wallpaper"

// Build returns the relative URL for p. Values are form-encoded (space as
// "+") and pairs follow the declaration order of model.ParamNames, so equal
// sets always produce byte-identical URLs.
func Build(p model.ParameterSet) string {
	var b strings.Builder
	b.WriteString(BasePath)
	b.WriteByte('?')
	for i, pair := range p.Pairs() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair[1]))
	}
	return b.String()
}

// Absolute prefixes a relative URL with origin (scheme://host[:port]).
func Absolute(origin, relative string) string {
	return strings.TrimRight(origin, "/") + relative
}

// Parse decodes a URL produced by Build, relative or absolute. Names other
// than the four parameters are ignored; missing names decode as "".
func Parse(raw string) (model.ParameterSet, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return model.ParameterSet{}, fmt.Errorf("parsing url: %w", err)
	}
	if u.Path != BasePath {
		return model.ParameterSet{}, fmt.Errorf("unexpected path %q: want %s", u.Path, BasePath)
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return model.ParameterSet{}, fmt.Errorf("parsing query: %w", err)
	}

	var p model.ParameterSet
	for _, name := range model.ParamNames {
		p = p.With(name, q.Get(name))
	}
	return p, nil
}

// Builder binds an origin to Build, for callers that need both forms.
type Builder struct {
	Origin string
}

// New returns a Builder for origin.
func New(origin string) Builder {
	return Builder{Origin: strings.TrimRight(origin, "/")}
}

// Relative returns Build(p).
func (b Builder) Relative(p model.ParameterSet) string {
	return Build(p)
}

// Absolute returns the origin-prefixed URL for p.
func (b Builder) Absolute(p model.ParameterSet) string {
	return Absolute(b.Origin, Build(p))
}
