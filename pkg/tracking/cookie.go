package tracking

import (
	"strconv"
	"strings"
	"time"
)

// Cookie names of the utm client.
const (
	UTMACookie = "__utma"
	UTMBCookie = "__utmb"
)

const (
	utmaFields = 6
	utmbFields = 4

	// utmbTokens is the token bucket value the utm client writes into __utmb.
	utmbTokens = 10
)

// ExtractFromUTMA overwrites the unique ID, the three visit timestamps and the
// visit count with the values of a __utma cookie:
//
//	<domain_hash>.<unique_id>.<first_visit>.<previous_visit>.<current_visit>.<visit_count>
//
// Timestamps are Unix seconds. The domain hash is ignored. A value with the
// wrong number of fields or a non-integer field yields a *FormatError; an
// out-of-range unique ID or a visit count below 1 yields a *ValidationError.
// On error the visitor is left untouched.
func (v *Visitor) ExtractFromUTMA(value string) (*Visitor, error) {
	parts := strings.Split(value, ".")
	if len(parts) != utmaFields {
		return nil, &FormatError{Cookie: UTMACookie, Fields: len(parts), Want: utmaFields}
	}

	p := fieldParser{cookie: UTMACookie}
	uniqueID := p.integer("unique_id", parts[1])
	first := p.unixTime("first_visit_time", parts[2])
	previous := p.unixTime("previous_visit_time", parts[3])
	current := p.unixTime("current_visit_time", parts[4])
	visitCount := p.integer("visit_count", parts[5])
	if p.err != nil {
		return nil, p.err
	}

	if err := validateUniqueID(uniqueID); err != nil {
		return nil, err
	}
	if visitCount < 1 {
		return nil, &ValidationError{Field: "visit_count", Message: "must be at least 1"}
	}

	v.uniqueID = uint32(uniqueID)
	v.hasUniqueID = true
	v.firstVisitTime = first
	v.previousVisitTime = previous
	v.currentVisitTime = current
	v.visitCount = int(visitCount)

	return v, nil
}

// UTMA encodes the visitor into a __utma cookie value. Reading the unique ID
// materializes it if needed. A visit count below 1, as on a zero Visitor,
// is written as 1 so the value always decodes.
func (v *Visitor) UTMA(domainHash uint32) string {
	return strings.Join([]string{
		strconv.FormatUint(uint64(domainHash), 10),
		strconv.FormatUint(uint64(v.UniqueID()), 10),
		formatTime(v.firstVisitTime),
		formatTime(v.previousVisitTime),
		formatTime(v.currentVisitTime),
		strconv.Itoa(max(v.visitCount, 1)),
	}, ".")
}

// ExtractFromUTMB overwrites the track count and start time with the values
// of a __utmb cookie:
//
//	<domain_hash>.<track_count>.<tokens>.<start_time>
//
// Only the second and fourth fields are read. Errors follow ExtractFromUTMA;
// a negative track count yields a *ValidationError.
func (s *Session) ExtractFromUTMB(value string) (*Session, error) {
	parts := strings.Split(value, ".")
	if len(parts) != utmbFields {
		return nil, &FormatError{Cookie: UTMBCookie, Fields: len(parts), Want: utmbFields}
	}

	p := fieldParser{cookie: UTMBCookie}
	trackCount := p.integer("track_count", parts[1])
	startTime := p.unixTime("start_time", parts[3])
	if p.err != nil {
		return nil, p.err
	}

	if trackCount < 0 {
		return nil, &ValidationError{Field: "track_count", Message: "must not be negative"}
	}

	s.trackCount = int(trackCount)
	s.startTime = startTime

	return s, nil
}

// UTMB encodes the session into a __utmb cookie value.
func (s *Session) UTMB(domainHash uint32) string {
	return strings.Join([]string{
		strconv.FormatUint(uint64(domainHash), 10),
		strconv.Itoa(s.trackCount),
		strconv.Itoa(utmbTokens),
		formatTime(s.startTime),
	}, ".")
}

// fieldParser parses cookie fields, keeping the first failure.
type fieldParser struct {
	cookie string
	err    error
}

func (p *fieldParser) integer(field, raw string) int64 {
	if p.err != nil {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.err = &FormatError{Cookie: p.cookie, Field: field, Err: err}
		return 0
	}
	return n
}

func (p *fieldParser) unixTime(field, raw string) time.Time {
	sec := p.integer(field, raw)
	if p.err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

func formatTime(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
