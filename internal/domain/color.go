package domain

import "strings"

// SubjectPalette is the fixed set of subject colours, as hex strings.
var SubjectPalette = []string{
	"#83a598", "#8ec07c", "#fabd2f", "#d3869b", "#fe8019", "#b8bb26",
	"#458588", "#689d6a", "#d79921", "#b16286", "#d65d0e", "#98971a",
}

// SubjectColor picks the colour for subject. A subject keeps the colour it
// already has among existing deliveries; otherwise the colour is derived
// from a stable hash of the normalized subject name.
func SubjectColor(subject string, existing []*Delivery) string {
	for _, d := range existing {
		if d.Subject == subject && d.Color != "" {
			return d.Color
		}
	}
	if subject == "" {
		return SubjectPalette[0]
	}
	return SubjectPalette[hashSubject(subject)%uint32(len(SubjectPalette))]
}

func hashSubject(subject string) uint32 {
	normalized := strings.ToLower(strings.TrimSpace(subject))
	var h uint32
	for _, c := range []byte(normalized) {
		h = h*31 + uint32(c)
	}
	return h
}
