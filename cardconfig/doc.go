// Package cardconfig loads, validates, and saves the YAML card
// configuration: palette, front and back text, maze style, and card
// dimensions.
//
// What:
//
//   - Config mirrors one card design end to end. Load starts from Default
//     and lets the YAML file override only the keys it mentions, so partial
//     configs stay valid.
//   - Validate fails fast on degenerate dimensions before any generation
//     starts.
//
// Why:
//
//   - Each card variant (recipient, palette, wall style) is one small YAML
//     file checked in next to the artwork; the generator binary consumes it.
//
// Errors:
//
//   - ErrInvalidConfig: non-positive card or maze dimensions, or an empty
//     output name.
package cardconfig
