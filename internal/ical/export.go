package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"encore/internal/meetup"
	"encore/internal/schedule"
)

const productID = "-//encore//festival schedules//EN"

// WriteSchedules serializes every performance of the given schedules as
// VEVENTs. Performances without an explicit end time get the assumed set
// length. Event UIDs are deterministic so re-imports update rather than
// duplicate.
func WriteSchedules(w io.Writer, schedules []schedule.Schedule, assumed time.Duration) error {
	cal := newCalendar()
	now := time.Now().UTC()

	for _, s := range schedules {
		for _, p := range s.Performances {
			if !p.Valid() {
				continue
			}
			start, end := p.IntervalAssuming(assumed)
			ev := cal.AddEvent(eventUID(s.Owner, p.Identity()))
			ev.SetDtStampTime(now)
			ev.SetStartAt(start)
			ev.SetEndAt(end)
			ev.SetSummary(p.Artist)
			if p.Stage != "" {
				ev.SetLocation(p.Stage)
			}
			ev.SetDescription(fmt.Sprintf("Schedule of %s", s.Owner))
		}
	}
	return cal.SerializeTo(w)
}

// WriteMeetups serializes meetup candidates as VEVENTs with the participant
// list in the description.
func WriteMeetups(w io.Writer, candidates []meetup.Candidate) error {
	cal := newCalendar()
	now := time.Now().UTC()

	for _, c := range candidates {
		key := c.Start.UTC().Format(time.RFC3339) + "\x00" + strings.Join(c.Participants, ",")
		ev := cal.AddEvent(eventUID("meetup", key))
		ev.SetDtStampTime(now)
		ev.SetStartAt(c.Start)
		ev.SetEndAt(c.End)
		ev.SetSummary(meetupSummary(c))
		if c.AnchorStage != "" {
			ev.SetLocation(c.AnchorStage)
		}
		ev.SetDescription("Participants: " + strings.Join(c.Participants, ", "))
	}
	return cal.SerializeTo(w)
}

func newCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	return cal
}

func meetupSummary(c meetup.Candidate) string {
	if c.Recommended && c.AnchorArtist != "" {
		return "Meetup before " + c.AnchorArtist
	}
	if c.AnchorArtist != "" {
		return "Meetup, then " + c.AnchorArtist
	}
	return "Meetup window"
}

// eventUID derives a stable UID from the owning scope and entry key.
func eventUID(scope, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(scope+"\x00"+key)).String() + "@encore"
}
