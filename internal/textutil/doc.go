// Package textutil provides text cleanup utilities for recognized schedule text.
//
// The primary use cases are:
//   - Normalizing noisy OCR output into line-oriented text the extraction
//     strategies can scan (separator repair, chrome stripping, line insertion)
//   - Cleaning artist and stage tokens discovered during extraction
//   - Producing the lowercase identity form used for deduplication
//
// Normalization never fails; unusable input normalizes to an empty string and
// the caller treats that as "nothing extractable".
package textutil
