// Package fakts ties discovery and the grant protocol together behind a
// small facade with per-group snapshot caching and single-flight collapse
// of concurrent resolves.
package fakts
