// Package pipeline implements the regenerate-and-backup workflow for card
// output files as explicit, separately testable steps.
//
// What:
//
//   - Snapshot moves any prior output aside to a backup path.
//   - Generate invokes a producer callback and verifies it wrote output.
//   - Compare diffs the fresh output against the snapshot.
//   - Persist keeps the new file or restores the snapshot.
//   - Run chains the four steps: a failed generation restores the
//     snapshot, a successful one discards it.
//
// Why:
//
//   - Regenerating over the previous print files must never lose them on a
//     failure halfway through; keeping each step explicit also lets a
//     caller ask "did anything change?" before reprinting.
//
// Errors:
//
//   - ErrNoOutput: the producer returned success but wrote no file.
//   - Filesystem errors pass through wrapped.
package pipeline
