package types

// LinkKind selects which published variant of a pattern a path refers to.
type LinkKind string

const (
	// LinkRendered is the fully rendered HTML page
	LinkRendered LinkKind = "rendered"

	// LinkRaw is the copy of the pattern template itself
	LinkRaw LinkKind = "rawTemplate"

	// LinkMarkupOnly is the rendered markup without the surrounding page
	LinkMarkupOnly LinkKind = "markupOnly"

	// LinkCustom uses the caller supplied extension verbatim
	LinkCustom LinkKind = "custom"
)
