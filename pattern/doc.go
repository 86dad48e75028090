// Package pattern generates the decorative background for the card faces:
// a harlequin diamond field with eight-pointed stars, in the manner of
// Mediterranean tile work.
//
// What:
//
//   - Harlequin tiles the canvas with a checkerboard of diamonds and
//     centers a gold star on each, with seeded per-star shade jitter.
//   - Valentine warms the palette toward pink-tinted cream for the
//     romance cards; caller options still apply on top.
//   - An optional vintage pass adds per-pixel noise and a soft blur.
//
// Why:
//
//   - The card front carries this pattern behind the greeting; the back
//     uses a plain variant behind the maze block.
//
// Determinism: all jitter and noise come from a single seeded source, so a
// fixed seed re-renders byte-identically.
//
// Errors:
//
//   - ErrInvalidSize: width, height, or diamond dimensions below 1.
//
// Complexity: O(cols×rows) stars plus O(W×H) for the vintage pass.
package pattern
