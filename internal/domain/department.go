package domain

import "net/url"

// Department represents a department of the tribunal; a chief's numdep is its ID
type Department struct {
	ID   int64
	Name string
}

// DecodeDepartmentName undoes the URL encoding the backend applies to some names.
// The raw value is kept when it is not valid percent-encoding.
func DecodeDepartmentName(name string) string {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return name
	}
	return decoded
}
