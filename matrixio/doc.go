// Package matrixio reads and writes matrices as files.
//
// Formats:
//
//   - YAML: either a bare list of rows or a document {name: ..., rows: [[...]]}.
//   - JSON: the same two shapes; decoded by the YAML decoder.
//   - Text: one row per line, values separated by whitespace or commas;
//     blank lines and lines starting with '#' are ignored.
//
// Compression is chosen from the outermost file extension: .gz (gzip), .zst
// (zstd) or .lz4; anything else is read as is. The format is chosen from the
// extension underneath, so "a.yaml.zst" is zstd-compressed YAML.
//
// Loader memoizes decoded files in an LRU keyed by path, size and modification
// time, so an edited file is always decoded afresh.
package matrixio
