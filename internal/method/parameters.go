package method

import (
	"net/url"
	"strconv"
)

// Parameters is an unordered mapping of names to rendered primitive values, used for query
// parameters and headers alike.
type Parameters map[string]string

// NewParameters returns an empty Parameters sized for n entries.
func NewParameters(n int) Parameters {
	return make(Parameters, n)
}

// SetBool stores a boolean value.
func (p Parameters) SetBool(name string, value bool) {
	p[name] = strconv.FormatBool(value)
}

// SetInt stores an integer value.
func (p Parameters) SetInt(name string, value int) {
	p[name] = strconv.Itoa(value)
}

// SetString stores a string value.
func (p Parameters) SetString(name, value string) {
	p[name] = value
}

// Get returns the value stored under name.
func (p Parameters) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Values converts the parameters to url.Values. Encoding the result sorts by name.
func (p Parameters) Values() url.Values {
	values := make(url.Values, len(p))
	for name, value := range p {
		values.Set(name, value)
	}
	return values
}
