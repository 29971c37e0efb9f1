package scenegraph

// Color is an RGBA color with components nominally in [0, 1]. Components are
// carried through unclamped and unvalidated.
type Color struct {
	R, G, B, A float64
}

// Properties is a bag of grouped, named appearance values attached to a
// geometry under one role.
type Properties struct {
	groups map[string]map[string]interface{}
}

// NewProperties returns an empty property bag.
func NewProperties() *Properties {
	return &Properties{groups: map[string]map[string]interface{}{}}
}

// Set stores a value under the given group and name, returning the bag so
// calls can chain.
func (p *Properties) Set(group, name string, value interface{}) *Properties {
	g, ok := p.groups[group]
	if !ok {
		g = map[string]interface{}{}
		p.groups[group] = g
	}
	g[name] = value
	return p
}

// Has reports whether a value exists under the given group and name.
func (p *Properties) Has(group, name string) bool {
	_, ok := p.Value(group, name)
	return ok
}

// Value returns the raw value stored under the given group and name.
func (p *Properties) Value(group, name string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	g, ok := p.groups[group]
	if !ok {
		return nil, false
	}
	v, ok := g[name]
	return v, ok
}

// Color returns the value stored under the given group and name if it exists
// and is a Color.
func (p *Properties) Color(group, name string) (Color, bool) {
	v, ok := p.Value(group, name)
	if !ok {
		return Color{}, false
	}
	c, ok := v.(Color)
	return c, ok
}
