package models

import "fmt"

// Filter narrows a listings search to a deal type.
type Filter int

const (
	// FilterAll requests all listings regardless of deal type
	FilterAll Filter = iota
	// FilterRent requests rental listings only
	FilterRent
	// FilterBuy requests sale listings only
	FilterBuy
)

// QueryValue returns the value for the deal-type query parameter.
// Empty means the parameter is omitted (no filtering).
func (f Filter) QueryValue() string {
	switch f {
	case FilterRent:
		return "let"
	case FilterBuy:
		return "sell"
	default:
		return ""
	}
}

func (f Filter) String() string {
	switch f {
	case FilterRent:
		return "rent"
	case FilterBuy:
		return "buy"
	default:
		return "all"
	}
}

// ParseFilter parses a filter name as used on the command line.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "all":
		return FilterAll, nil
	case "rent", "let":
		return FilterRent, nil
	case "buy", "sell":
		return FilterBuy, nil
	}
	return FilterAll, fmt.Errorf("unknown deal type %q (want all, rent or buy)", s)
}
