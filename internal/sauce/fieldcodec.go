package sauce

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// This file is L6: per-field encode/decode. Every function here is
// total — malformed input degrades to a documented default rather than
// an error; only decodeVersion's caller (record.go) treats an invalid
// version as fatal to the whole record, per spec §4.7.

var spacePad = []byte{' '}
var nulPad = []byte{0}

// encodeSpacePadded implements the title/author/group/version contract:
// trim, transcode to CP437 (unmappable code points drop out), then
// right-pad with 0x20 to exactly width bytes (or truncate).
func encodeSpacePadded(s string, width int) []byte {
	s = strings.TrimSpace(s)
	return padTruncate(defaultTranscoder.encode(s), width, spacePad)
}

// decodeSpacePadded implements the matching decode: split at the first
// NUL (tolerating rogue writers that NUL-terminate instead of
// space-padding), decode CP437 with a UTF-8 rescue step, trim trailing
// whitespace. ok is false for an empty or NUL-only field.
func decodeSpacePadded(b []byte) (s string, ok bool) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	text := defaultTranscoder.decode(b)
	if !utf8.ValidString(text) {
		text = rescueTranscoder.decode(b)
	}
	text = strings.TrimRight(text, " \t\r\n\x00")
	if text == "" {
		return "", false
	}
	return text, true
}

// encodeCString implements the t_info_s contract: same transcode as
// encodeSpacePadded but NUL-padded instead of space-padded.
func encodeCString(s string, width int) []byte {
	s = strings.TrimSpace(s)
	return padTruncate(defaultTranscoder.encode(s), width, nulPad)
}

// decodeCString mirrors decodeSpacePadded for NUL-padded fields. ok is
// false for a zero-filled slot, letting a caller distinguish "no value"
// from a legitimate empty string.
func decodeCString(b []byte) (s string, ok bool) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	text := defaultTranscoder.decode(b)
	if !utf8.ValidString(text) {
		text = rescueTranscoder.decode(b)
	}
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return "", false
	}
	return text, true
}

func isPrintableASCII(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}

// defaultVersion is emitted whenever the version field is empty or
// otherwise invalid on encode, or unparseable on decode.
const defaultVersion = "00"

func encodeVersion(s string) []byte {
	s = strings.TrimSpace(s)
	if len(s) != FieldSize(FieldVersion) || !isPrintableASCII(s) {
		return []byte(defaultVersion)
	}
	return []byte(s)
}

func decodeVersion(b []byte) (string, bool) {
	s := string(b)
	if !isPrintableASCII(s) || strings.TrimSpace(s) == "" {
		return defaultVersion, false
	}
	return s, true
}

// encodeDate renders a calendar date as eight zero-padded ASCII digits.
func encodeDate(t time.Time) []byte {
	return []byte(fmt.Sprintf("%04d%02d%02d", t.Year(), int(t.Month()), t.Day()))
}

// decodeDate parses "CCYYMMDD"; a parse failure or a calendar-invalid
// value (month 13, day 0, ...) is reported as ok == false ("no date")
// rather than a normalized-but-wrong date.
func decodeDate(b []byte) (t time.Time, ok bool) {
	s := string(b)
	if len(s) != 8 {
		return time.Time{}, false
	}
	y, err1 := strconv.Atoi(s[0:4])
	m, err2 := strconv.Atoi(s[4:6])
	d, err3 := strconv.Atoi(s[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	parsed := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if parsed.Year() != y || int(parsed.Month()) != m || parsed.Day() != d {
		return time.Time{}, false
	}
	return parsed, true
}

// encodeU8 wraps v mod 2^8; a negative v is coerced to unsigned via
// two's-complement wrap (Go's int->uint8 conversion already does this).
func encodeU8(v int) byte { return byte(uint8(v)) }

func decodeU8(b []byte) uint8 { return b[0] }

func encodeU16LE(v int) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	return b
}

func decodeU16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func encodeU32LE(v uint64) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func decodeU32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// encodeFileSize writes 0 when size exceeds the 32-bit limit, per
// spec §3 ("0 if >2^32-1").
func encodeFileSize(size uint64) []byte {
	if size > FileSizeLimit {
		return encodeU32LE(0)
	}
	return encodeU32LE(size)
}

// encodeDataType clamps an out-of-range data type to None.
func encodeDataType(d DataType) byte { return DataTypeOf(d.IntOf()).IntOf() }

func decodeDataType(b []byte) DataType { return DataTypeOf(b[0]) }

// encodeFileType clamps fileType to 0 unless (fileType, dataType)
// resolves to a known media type; binary_text accepts any file_type.
func encodeFileType(fileType uint8, dataType DataType) byte {
	if dataType == DataTypeBinaryText {
		return fileType
	}
	if ResolveMedia(fileType, dataType) != MediaNone {
		return fileType
	}
	return 0
}

// encodeCommentLines clamps n into the representable 0..255 range.
func encodeCommentLines(n int) byte {
	if n < 0 {
		return 0
	}
	if n > MaxCommentLines {
		return MaxCommentLines
	}
	return byte(n)
}

func decodeCommentLines(b []byte) uint8 { return b[0] }

// writeField overwrites a single field of a 128-byte record buffer in
// place (returning a new buffer, never mutating record). raw must be
// exactly FieldSize(id) bytes.
func writeField(record []byte, id Field, raw []byte) ([]byte, error) {
	if len(raw) != FieldSize(id) {
		return nil, ErrInvalidLength
	}
	return replaceSlice(record, FieldOffset(id), raw)
}

// readFieldBytes slices out the raw bytes of a field from a 128-byte
// record, without decoding them.
func readFieldBytes(record []byte, id Field) []byte {
	off := FieldOffset(id)
	return record[off : off+FieldSize(id)]
}
