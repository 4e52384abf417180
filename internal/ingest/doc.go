// Package ingest drives the image-to-schedule pipeline.
//
// For each photographed lineup it runs OCR, normalizes the recognized text,
// extracts performances, and folds the result into the owner's stored
// schedule. Images are processed sequentially and individually: one
// unreadable photo is reported in its result entry without aborting the
// batch. A file lock on the data directory keeps concurrent ingest runs from
// interleaving writes.
package ingest
