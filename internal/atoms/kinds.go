package atoms

import "fmt"

// MediaKind is SublerCLI's classification of a media file. The kind
// controls which metadata fields the tool considers meaningful.
type MediaKind int

const (
	Movie MediaKind = iota
	Music
	Audiobook
	MusicVideo
	TVShow
	Booklet
	Ringtone
)

// kindTokens maps each kind to the exact token SublerCLI expects.
// Adding a new kind is a one-line edit here plus a constant above.
var kindTokens = map[MediaKind]string{
	Movie:      "Movie",
	Music:      "Music",
	Audiobook:  "Audiobook",
	MusicVideo: "Music Video",
	TVShow:     "TV Show",
	Booklet:    "Booklet",
	Ringtone:   "Ringtone",
}

// String returns the token SublerCLI expects for this kind.
func (k MediaKind) String() string {
	if s, ok := kindTokens[k]; ok {
		return s
	}
	return kindTokens[Movie]
}

// MediaKinds returns all recognized kinds in declaration order.
func MediaKinds() []MediaKind {
	return []MediaKind{Movie, Music, Audiobook, MusicVideo, TVShow, Booklet, Ringtone}
}

// ParseMediaKind resolves a user-supplied kind string to a MediaKind.
// Matching is case-insensitive and tolerates the space-free spellings
// "musicvideo" and "tvshow".
func ParseMediaKind(s string) (MediaKind, error) {
	switch normalizeKind(s) {
	case "movie", "":
		return Movie, nil
	case "music":
		return Music, nil
	case "audiobook":
		return Audiobook, nil
	case "musicvideo":
		return MusicVideo, nil
	case "tvshow":
		return TVShow, nil
	case "booklet":
		return Booklet, nil
	case "ringtone":
		return Ringtone, nil
	}
	return Movie, fmt.Errorf("unknown media kind %q", s)
}

// normalizeKind lowercases and strips spaces, dashes, and underscores.
func normalizeKind(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
