// Package extract parses normalized schedule text into performance records.
//
// Extraction runs a fixed priority order of strategies over the line-oriented
// text produced by textutil.NormalizeRecognized; the first strategy yielding
// any records wins. Strategies are heuristics tuned to the screenshot formats
// seen in the wild:
//
//   - line scan: standalone time anchors with artist/stage lines nearby,
//     carrying the most recently seen stage as context
//   - range scan: "7:45PM - 9:00PM" style lines with an artist resolution
//     ladder around the match
//
// Text that yields no anchors produces an empty result, never an error; the
// caller surfaces that as a "could not extract" state.
package extract
