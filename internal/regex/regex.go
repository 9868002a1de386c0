package regex

import "regexp"

var (
	// Period patterns (yy.MM.dd.HH.mm after normalization)
	Period = regexp.MustCompile(`^([0-9]{2})\.([0-9]{2})\.([0-9]{2})\.([0-9]{2})\.([0-9]{2})$`)

	// Route patterns
	IATACode = regexp.MustCompile(`^[A-Z0-9]{3}$`)
)
