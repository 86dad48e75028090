// Package valentinescards generates printable Valentine's Day trading cards:
// a decorated front face and a procedurally generated maze puzzle on the back.
//
// 🚀 What lives here?
//
//	A small, deterministic toolkit organized as one package per concern:
//		• maze/       — grid model + spanning-tree generators (DFS, Prim, Kruskal, Wilson) and BFS solving
//		• render/     — raster (PNG) and vector (SVG) maze rendering with pluggable wall styles
//		• pattern/    — harlequin star background generator for the card faces
//		• card/       — print geometry (inches, DPI, bleed) and front/back composition
//		• cardconfig/ — YAML card configuration (palette, text, maze style)
//		• pipeline/   — snapshot / generate / compare / persist regeneration workflow
//		• cmd/valentine — the batch CLI tying it all together
//
// ✨ Guarantees
//
//   - Every generated maze is a spanning tree of the cell grid: exactly one
//     path between any two cells, exactly W×H−1 open walls, no cycles.
//   - A fixed seed reproduces the exact same wall configuration.
//   - Rendering is single-pass and side-effect free until the final write;
//     output dimensions always match the requested canvas exactly.
//
// Card reference: 3.5″ × 2.5″ at 300 DPI = 1050 × 750 pixels.
package valentinescards
