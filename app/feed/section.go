package feed

import (
	"regexp"
	"strings"
)

// IsolateSection returns the substring of page between the first
// case-insensitive occurrence of startMarker and the first occurrence of
// endMarker after it. The start marker is tried with both a raw ampersand
// and its &amp; entity, since the page markup contains either depending on
// context. Bounding is only a noise-reduction heuristic: if either marker is
// missing, or the end marker does not occur after the start, the whole page
// is returned unmodified so extraction still sees every candidate.
func IsolateSection(page, startMarker, endMarker string) string {
	start := markerIndex(page, encodeAmpersands(startMarker))
	if start == -1 {
		start = markerIndex(page, startMarker)
	}
	if start == -1 {
		return page
	}

	end := markerIndex(page, endMarker)
	if end <= start {
		return page
	}

	return page[start:end]
}

// markerIndex finds the first case-insensitive occurrence of marker and
// returns a byte index valid for slicing page directly. Case folding can
// change a rune's byte length, so indexes from a lowered copy of the page
// must never be used against the original.
func markerIndex(page, marker string) int {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(marker))
	loc := re.FindStringIndex(page)
	if loc == nil {
		return -1
	}
	return loc[0]
}

func encodeAmpersands(s string) string {
	return strings.ReplaceAll(s, "&", "&amp;")
}
