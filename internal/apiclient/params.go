package apiclient

import "net/url"

// Params collects query parameters before encoding. Keys with empty values
// must not be added: callers include a key only when it is actually set.
type Params map[string]string

// Set adds value under key when value is non-empty.
func (p Params) Set(key, value string) Params {
	if value != "" {
		p[key] = value
	}
	return p
}

// Merge copies every entry of other into p.
func (p Params) Merge(other map[string]string) Params {
	for k, v := range other {
		p[k] = v
	}
	return p
}

// Encode renders the query string including the leading "?", or "" when no
// parameter is set.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range p {
		values.Set(k, v)
	}
	return "?" + values.Encode()
}
