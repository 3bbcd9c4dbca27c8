package types

import "strings"

// TabType identifies one kind of companion content, usually a language name
// such as "json" or "css".
type TabType string

// Lower returns the form used for filesystem lookups.
func (t TabType) Lower() string {
	return strings.ToLower(string(t))
}

// Upper returns the form used for display substitution.
func (t TabType) Upper() string {
	return strings.ToUpper(string(t))
}

func (t TabType) String() string {
	return string(t)
}

// TabTypesFromStrings converts configured names, preserving order and duplicates.
func TabTypesFromStrings(names []string) []TabType {
	tabs := make([]TabType, len(names))
	for i, n := range names {
		tabs[i] = TabType(n)
	}
	return tabs
}

// TabTypeStrings is the inverse of TabTypesFromStrings.
func TabTypeStrings(tabs []TabType) []string {
	names := make([]string, len(tabs))
	for i, t := range tabs {
		names[i] = string(t)
	}
	return names
}
