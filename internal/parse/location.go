package parse

import (
	"regexp"
	"strings"
)

var floorRe = regexp.MustCompile(`(?i)^(ground\s+)?floor(\s*\d+)?$`)

// Building extracts the building component from a free-form complaint
// location such as "Room 101, Main Building, Floor 2". The location is split
// on commas and the last segment that is not a bare floor marker wins, so the
// example yields "Main Building" rather than "Floor 2". A location with no
// commas is returned as-is.
func Building(location string) string {
	segments := strings.Split(location, ",")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.TrimSpace(segments[i])
		if segment == "" || floorRe.MatchString(segment) {
			continue
		}
		return segment
	}
	return strings.TrimSpace(location)
}
