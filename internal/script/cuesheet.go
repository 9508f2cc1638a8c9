package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// LoadFile reads and parses a cue sheet from disk.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ParseCueSheet(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Regular expressions for the cue-sheet text format.
var (
	// Matches offsets like [00:12.34] or [00:12] or [1:02:03].
	offsetRe = regexp.MustCompile(`^\[(?:(\d+):)?(\d+):(\d+)(?:\.(\d+))?\]`)

	// Matches metadata tags like [ti:Evening Performance].
	metadataRe = regexp.MustCompile(`^\[([a-z]+):(.+)\]$`)

	// Matches a leading department marker like "LX:" or "SND:".
	departmentRe = regexp.MustCompile(`^([A-Z][A-Z0-9]{1,4}):\s*`)

	// Matches a trailing page marker like "@12".
	pageRe = regexp.MustCompile(`\s+@(\d+)$`)
)

// ParseCueSheet parses the cue-sheet text format from a reader.
//
// Metadata tags carry script-level fields: [ti:] title, [ve:] venue,
// [st:]/[et:] curtain and end wall-clock times as HH:MM. Every other
// non-empty line is one element, normally prefixed with an [mm:ss.cc]
// offset. A "!" marks a note row, ">" a group header, and an uppercase
// "DEPT:" prefix assigns the cue to a department. Rows without an offset
// are kept at offset zero rather than rejected, so one bad row never
// drops the rest of the sheet.
func ParseCueSheet(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)
	seq := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if meta := metadataRe.FindStringSubmatch(line); meta != nil {
			tag := meta[1]
			value := strings.TrimSpace(meta[2])
			switch tag {
			case "ti":
				s.Title = value
				continue
			case "ve":
				s.Venue = value
				continue
			case "st":
				if t, err := time.Parse("15:04", value); err == nil {
					s.Start = t
				}
				continue
			case "et":
				if t, err := time.Parse("15:04", value); err == nil {
					s.End = t
				}
				continue
			}
			// Unknown lowercase tags fall through: [x:...] could be a
			// timestamped row like [0:12] without fractional part.
		}

		var offset time.Duration
		rest := line
		if m := offsetRe.FindStringSubmatch(line); m != nil {
			offset = parseOffset(m)
			rest = strings.TrimSpace(line[len(m[0]):])
		}
		if rest == "" {
			continue
		}

		seq++
		el := Element{
			ID:     fmt.Sprintf("e%03d", seq),
			Offset: offset,
			Kind:   KindCue,
		}

		if m := pageRe.FindStringSubmatch(rest); m != nil {
			el.Page, _ = strconv.Atoi(m[1])
			rest = strings.TrimSpace(rest[:len(rest)-len(m[0])])
		}

		switch {
		case strings.HasPrefix(rest, "!"):
			el.Kind = KindNote
			rest = strings.TrimSpace(rest[1:])
		case strings.HasPrefix(rest, ">"):
			el.Kind = KindGroup
			rest = strings.TrimSpace(rest[1:])
		default:
			if m := departmentRe.FindStringSubmatch(rest); m != nil {
				el.Department = m[1]
				rest = rest[len(m[0]):]
			}
		}

		el.Label = rest
		s.Elements = append(s.Elements, el)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// parseOffset converts a matched offset into a duration. The groups are
// optional hours, minutes, seconds and an optional fraction, where two
// fractional digits mean centiseconds and three mean milliseconds.
func parseOffset(m []string) time.Duration {
	var hours int
	if m[1] != "" {
		hours, _ = strconv.Atoi(m[1])
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	var millis int
	if m[4] != "" {
		millis, _ = strconv.Atoi(m[4])
		if len(m[4]) == 2 {
			millis *= 10
		}
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}
