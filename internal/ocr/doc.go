// Package ocr wraps the external text recognition engine.
//
// The engine is treated as an opaque text-producing service: an image goes
// in, recognized text comes out, with coarse progress notifications along the
// way. A failure is terminal for that single image only; retry policy belongs
// to the caller. The default implementation shells out to the tesseract
// binary; tests inject a command runner instead.
package ocr
