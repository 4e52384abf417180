// Package ical serializes stored schedules and meetup candidates to the
// iCalendar format so they can be imported into phone calendars.
package ical
