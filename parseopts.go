package amath

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// strict disables the retry with a closing parenthesis appended.
	strict bool
}

type strictopt struct{}

// StrictClose disables the second attempt Parse otherwise makes, with one
// closing parenthesis appended, when its input fails to parse. Without it,
// "max(1, 2" parses like "max(1, 2)".
func StrictClose() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}
