package config

import "time"

// AssumedSet is the assumed performance length for entries without an
// explicit end time.
func (f Festival) AssumedSet() time.Duration {
	return time.Duration(f.SetMinutes) * time.Minute
}

// ArriveEarly is how long before a shared set a meetup is proposed.
func (f Festival) ArriveEarly() time.Duration {
	return time.Duration(f.ArriveEarlyMinutes) * time.Minute
}

// MinOverlap is the smallest shared free window worth proposing.
func (f Festival) MinOverlap() time.Duration {
	return time.Duration(f.MinOverlapMinutes) * time.Minute
}

// MaxWindow caps how much of a long shared free window is proposed.
func (f Festival) MaxWindow() time.Duration {
	return time.Duration(f.MaxWindowMinutes) * time.Minute
}
