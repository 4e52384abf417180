// Package meetup discovers candidate meeting windows across multiple owners'
// schedules.
//
// Discovery runs in two passes. Shared performances (same identity in two or
// more schedules) yield recommended "arrive early" windows just before the
// set. Only when fewer than two of those exist does the engine fall back to
// intersecting the owners' free-time gaps pairwise. Both passes feed one
// ranked list: recommended candidates first, then by a festival-local clock
// that treats early morning hours as the tail of the previous evening.
//
// The ranked list is recomputed from scratch on every call; candidates are
// never mutated after creation.
package meetup
