package sauce

import (
	"golang.org/x/text/encoding/charmap"
)

// transcoder converts between the record's on-disk bytes and UTF-8 text.
// Spec §1 treats code-page conversion as an injected collaborator; the
// core only needs bytes<->text, at minimum for CP437 and UTF-8. This
// indirection also isolates the one place that would change to support
// additional code pages (spec §9 Open Questions).
type transcoder interface {
	// decode converts raw on-disk bytes to UTF-8 text. It never fails:
	// unmappable bytes degrade to the Unicode replacement behavior of
	// the underlying encoding.
	decode(b []byte) string
	// encode converts UTF-8 text to on-disk bytes, replacing code points
	// that cannot be represented with nothing (spec §4.6: "transcode ...
	// replacing unmappable code points with empty").
	encode(s string) []byte
}

type cp437Transcoder struct{}

func (cp437Transcoder) decode(b []byte) string {
	out, err := charmap.CodePage437.NewDecoder().Bytes(b)
	if err != nil {
		// CP437 is a single-byte encoding; every byte value is mapped,
		// so NewDecoder().Bytes never actually fails, but the decode
		// pipeline tolerates it by falling through to UTF-8.
		return utf8Transcoder{}.decode(b)
	}
	return string(out)
}

func (cp437Transcoder) encode(s string) []byte {
	enc := charmap.CodePage437.NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err == nil {
		return out
	}
	// Fall back to encoding rune by rune, dropping anything CP437 cannot
	// represent rather than failing the whole field.
	var buf []byte
	for _, r := range s {
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			continue
		}
		buf = append(buf, b...)
	}
	return buf
}

type utf8Transcoder struct{}

func (utf8Transcoder) decode(b []byte) string { return string(b) }
func (utf8Transcoder) encode(s string) []byte { return []byte(s) }

var (
	defaultTranscoder transcoder = cp437Transcoder{}
	rescueTranscoder  transcoder = utf8Transcoder{}
)
