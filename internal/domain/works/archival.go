package works

// ArchivalFilter narrows a collection listing by the archival flag.
type ArchivalFilter int

const (
	ArchivalAll ArchivalFilter = iota
	ArchivalHide
	ArchivalShowOnly
)

// ParseArchivalFilter reads the "archival" query value. Unknown values mean
// no filtering.
func ParseArchivalFilter(v string) ArchivalFilter {
	switch v {
	case "hide", "archival-hide":
		return ArchivalHide
	case "show-only", "showOnly", "archival-showOnly":
		return ArchivalShowOnly
	default:
		return ArchivalAll
	}
}

func (f ArchivalFilter) String() string {
	switch f {
	case ArchivalHide:
		return "archival-hide"
	case ArchivalShowOnly:
		return "archival-showOnly"
	default:
		return ""
	}
}

// Matches reports whether a piece with the given archival flag passes f.
func (f ArchivalFilter) Matches(archival bool) bool {
	switch f {
	case ArchivalHide:
		return !archival
	case ArchivalShowOnly:
		return archival
	default:
		return true
	}
}
