package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/dhowden/tag"
	"github.com/franz/tidysic/internal/util"
)

// audioExtensions is the closed set of extensions tidysic treats as audio,
// matched case-sensitively against the extension text as stored (spec
// §4.1): ".MP3" is clutter, ".mp3" is audio.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsAudioFile reports whether path names a regular file with a recognized
// audio extension. Symlinks, directories, and unrecognized extensions are
// not audio.
func IsAudioFile(path string, info os.FileInfo) bool {
	if info == nil || !info.Mode().IsRegular() {
		return false
	}
	return audioExtensions[filepath.Ext(path)]
}

// Reader reads tags from a file path: it never panics, returns an empty
// Bag for any non-fatal failure (no tag container, empty container,
// unparseable audio), and only returns an error for fatal I/O problems
// such as permission denied.
type Reader interface {
	Read(path string) (Bag, error)
}

// DhowdenReader reads ID3v1/v2, FLAC, and Vorbis comment tags using
// github.com/dhowden/tag.
type DhowdenReader struct{}

var trackWithTotal = regexp.MustCompile(`^(\d+)/\d+$`)

// Read implements Reader.
func (DhowdenReader) Read(path string) (Bag, error) {
	bag := NewBag()

	f, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return bag, fmt.Errorf("reading tags from %s: %w", path, util.ErrPermission)
		}
		// Missing/unreadable-as-audio is non-fatal: empty bag.
		return bag, nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// No tag container, or a container tag couldn't parse: non-fatal.
		return bag, nil
	}

	bag.Set(Artist, m.Artist())
	bag.Set(Album, m.Album())
	bag.Set(Title, m.Title())
	bag.Set(Genre, m.Genre())

	if m.Year() > 0 {
		bag.Set(Date, fmt.Sprintf("%d", m.Year()))
	}

	if track, _ := m.Track(); track > 0 {
		bag.Set(TrackNumber, fmt.Sprintf("%d", track))
	}

	return bag, nil
}

// NormalizeTrackNumber extracts the leading integer from a stored
// tracknumber value of the form "N/M", returning it verbatim as a string;
// other forms are returned unchanged. This mirrors the dhowden/tag-backed
// reader's own Track() split, and is exposed so the template engine can
// apply it to tag sources that don't pre-split it.
func NormalizeTrackNumber(value string) string {
	if m := trackWithTotal.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return value
}
</content>
