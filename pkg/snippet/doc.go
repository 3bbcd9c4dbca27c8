// Package snippet assembles the plugin's browser script.
//
// The bundle holds a snippet template (snippet.js) and a dist/ tree. Every
// file under dist/ is published under the plugin's component directory with
// its /*SNIPPETS*/ marker replaced by one template expansion per tab type.
package snippet
