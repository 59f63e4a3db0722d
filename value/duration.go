// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DURATION parse errors (RFC 5545 §3.3.6 grammar).
var (
	ErrDurationEmpty         = errors.New("value: empty DURATION")
	ErrDurationBadPrefix     = errors.New("value: DURATION must start with P (optionally preceded by + or -)")
	ErrDurationUnexpected    = errors.New("value: unexpected character in DURATION")
	ErrDurationMissingUnit   = errors.New("value: missing unit after number in DURATION")
	ErrDurationMixedWeeks    = errors.New("value: weeks form (PnW) cannot be mixed with other components")
	ErrDurationTimeWithoutT  = errors.New("value: time components require a preceding 'T'")
	ErrDurationDuplicateUnit = errors.New("value: duplicate time unit in DURATION")
)

// ParseDuration parses an iCalendar DURATION value into a time.Duration.
// Grounded on calendar.parseICSDuration's P[n]W/[n]DT[n]H[n]M[n]S walk,
// generalized to also enforce the week-form mixed validation spelled out
// in the RFC grammar.
func ParseDuration(s string) (time.Duration, error) {
	start, end := 0, len(s)
	for start < end && unicode.IsSpace(rune(s[start])) {
		start++
	}
	for end > start && unicode.IsSpace(rune(s[end-1])) {
		end--
	}
	if start == end {
		return 0, ErrDurationEmpty
	}
	s = s[start:end]

	sign := int64(1)
	i := 0
	switch s[i] {
	case '+':
		i++
	case '-':
		sign = -1
		i++
	}

	if i >= len(s) || s[i] != 'P' {
		return 0, ErrDurationBadPrefix
	}
	i++

	readInt := func() (int64, bool) {
		if i >= len(s) || !unicode.IsDigit(rune(s[i])) {
			return 0, false
		}
		start := i
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
		v, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	if wpos := strings.IndexByte(s[i:], 'W'); wpos != -1 {
		wpos += i
		numStart := i
		if numStart >= wpos {
			return 0, ErrDurationMissingUnit
		}
		for j := numStart; j < wpos; j++ {
			if !unicode.IsDigit(rune(s[j])) {
				return 0, ErrDurationUnexpected
			}
		}
		if wpos != len(s)-1 {
			return 0, ErrDurationMixedWeeks
		}
		v, err := strconv.ParseInt(s[numStart:wpos], 10, 64)
		if err != nil {
			return 0, ErrDurationUnexpected
		}
		return time.Duration(sign * v * 7 * 24 * int64(time.Hour)), nil
	}

	var (
		inTime              bool
		dur                 int64
		usedH, usedM, usedS bool
	)

	for i < len(s) {
		if s[i] == 'T' {
			inTime = true
			i++
			continue
		}
		v, ok := readInt()
		if !ok {
			return 0, ErrDurationMissingUnit
		}
		if i >= len(s) {
			return 0, ErrDurationMissingUnit
		}
		unit := s[i]
		i++

		switch unit {
		case 'D':
			if inTime {
				return 0, ErrDurationUnexpected
			}
			dur += v * 24 * int64(time.Hour)
		case 'H':
			if !inTime {
				return 0, ErrDurationTimeWithoutT
			}
			if usedH {
				return 0, ErrDurationDuplicateUnit
			}
			usedH = true
			dur += v * int64(time.Hour)
		case 'M':
			if !inTime {
				return 0, ErrDurationTimeWithoutT
			}
			if usedM {
				return 0, ErrDurationDuplicateUnit
			}
			usedM = true
			dur += v * int64(time.Minute)
		case 'S':
			if !inTime {
				return 0, ErrDurationTimeWithoutT
			}
			if usedS {
				return 0, ErrDurationDuplicateUnit
			}
			usedS = true
			dur += v * int64(time.Second)
		default:
			return 0, ErrDurationUnexpected
		}
	}

	return time.Duration(sign * dur), nil
}

// FormatDuration renders d in the canonical P[nD][T[nH][nM][nS]] form. Zero
// duration renders as "PT0S".
func FormatDuration(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteByte('P')

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	if days > 0 {
		b.WriteString(strconv.FormatInt(int64(days), 10))
		b.WriteByte('D')
	}

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	if hours > 0 || minutes > 0 || seconds > 0 || days == 0 {
		b.WriteByte('T')
		if hours > 0 {
			b.WriteString(strconv.FormatInt(int64(hours), 10))
			b.WriteByte('H')
		}
		if minutes > 0 {
			b.WriteString(strconv.FormatInt(int64(minutes), 10))
			b.WriteByte('M')
		}
		if seconds > 0 || (hours == 0 && minutes == 0) {
			b.WriteString(strconv.FormatInt(int64(seconds), 10))
			b.WriteByte('S')
		}
	}

	return b.String()
}
