// Package companion publishes per-pattern tab assets.
//
// For every configured tab type a pattern gets exactly one published file:
// a byte copy of the companion file found beside the pattern source, or an
// empty stand-in when none exists. The browser side can then always fetch
// <pattern>/<pattern>.<tab> without hitting a 404.
package companion
