package sauce

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeDecodeSpacePaddedRoundtrip(t *testing.T) {
	raw := encodeSpacePadded("ACiD Productions", 20)
	if len(raw) != 20 {
		t.Fatalf("len = %d, want 20", len(raw))
	}
	got, ok := decodeSpacePadded(raw)
	if !ok || got != "ACiD Productions" {
		t.Fatalf("got (%q, %v), want (\"ACiD Productions\", true)", got, ok)
	}
}

func TestDecodeSpacePaddedEmptyIsNoValue(t *testing.T) {
	raw := bytes.Repeat([]byte{' '}, 20)
	got, ok := decodeSpacePadded(raw)
	if ok || got != "" {
		t.Fatalf("got (%q, %v), want (\"\", false)", got, ok)
	}
	raw = make([]byte, 20) // NUL-filled
	got, ok = decodeSpacePadded(raw)
	if ok || got != "" {
		t.Fatalf("NUL-filled: got (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestEncodeSpacePaddedTruncatesAtExactWidth(t *testing.T) {
	raw := encodeSpacePadded("this title is far too long to fit in thirty-five bytes", 35)
	if len(raw) != 35 {
		t.Fatalf("len = %d, want 35", len(raw))
	}
}

func TestCStringDistinguishesEmptyFromNoValue(t *testing.T) {
	raw := encodeCString("", 22)
	_, ok := decodeCString(raw)
	if ok {
		t.Fatalf("expected no-value sentinel for zero-filled slot")
	}

	raw = encodeCString("IBM VGA", 22)
	got, ok := decodeCString(raw)
	if !ok || got != "IBM VGA" {
		t.Fatalf("got (%q, %v)", got, ok)
	}
}

func TestEncodeVersionDefaultsOnInvalid(t *testing.T) {
	cases := []string{"", "   ", "abc", "0"}
	for _, c := range cases {
		if got := string(encodeVersion(c)); got != "00" {
			t.Fatalf("encodeVersion(%q) = %q, want \"00\"", c, got)
		}
	}
	if got := string(encodeVersion("05")); got != "05" {
		t.Fatalf("encodeVersion(\"05\") = %q, want \"05\"", got)
	}
}

func TestDecodeVersionInvalidReportsFalse(t *testing.T) {
	if _, ok := decodeVersion([]byte{0, 0}); ok {
		t.Fatalf("expected ok=false for NUL version bytes")
	}
	if got, ok := decodeVersion([]byte("00")); !ok || got != "00" {
		t.Fatalf("got (%q, %v)", got, ok)
	}
}

func TestDateEncodeDecodeRoundtrip(t *testing.T) {
	d := time.Date(1994, 8, 31, 0, 0, 0, 0, time.UTC)
	raw := encodeDate(d)
	if string(raw) != "19940831" {
		t.Fatalf("encodeDate = %q, want 19940831", raw)
	}
	got, ok := decodeDate(raw)
	if !ok || !got.Equal(d) {
		t.Fatalf("got (%v, %v), want (%v, true)", got, ok, d)
	}
}

func TestDecodeDateRejectsCalendarInvalid(t *testing.T) {
	cases := []string{"19941301", "19940831x", "abcdefgh", "19940230"}
	for _, c := range cases {
		if _, ok := decodeDate([]byte(c)); ok {
			t.Fatalf("decodeDate(%q) expected ok=false", c)
		}
	}
}

func TestEncodeU16LERoundtrip(t *testing.T) {
	for _, v := range []int{0, 1, 80, 65535} {
		raw := encodeU16LE(v)
		if got := decodeU16LE(raw); int(got) != v {
			t.Fatalf("roundtrip(%d) = %d", v, got)
		}
	}
}

func TestEncodeU8WrapsNegative(t *testing.T) {
	if got := encodeU8(-1); got != 255 {
		t.Fatalf("encodeU8(-1) = %d, want 255", got)
	}
}

func TestEncodeFileSizeClampsOverflow(t *testing.T) {
	raw := encodeFileSize(uint64(FileSizeLimit) + 1)
	if got := decodeU32LE(raw); got != 0 {
		t.Fatalf("oversize file_size encoded to %d, want 0", got)
	}
	raw = encodeFileSize(8900)
	if got := decodeU32LE(raw); got != 8900 {
		t.Fatalf("got %d, want 8900", got)
	}
}

func TestEncodeFileTypeClampsUnresolved(t *testing.T) {
	// file_type 255 doesn't resolve under character data.
	if got := encodeFileType(255, DataTypeCharacter); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	// ANSi (file_type 1) resolves under character data.
	if got := encodeFileType(1, DataTypeCharacter); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	// binary_text accepts any file_type.
	if got := encodeFileType(200, DataTypeBinaryText); got != 200 {
		t.Fatalf("got %d, want 200 (binary_text accepts any file_type)", got)
	}
}

func TestEncodeCommentLinesClamps(t *testing.T) {
	if got := encodeCommentLines(-1); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if got := encodeCommentLines(1000); got != 255 {
		t.Fatalf("got %d, want 255", got)
	}
}

func TestWriteFieldRejectsWrongLength(t *testing.T) {
	record := make([]byte, RecordSize)
	if _, err := writeField(record, FieldTitle, []byte("too short")); err != ErrInvalidLength {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestWriteFieldOverwritesInPlace(t *testing.T) {
	record := make([]byte, RecordSize)
	copy(record, sauceID[:])
	updated, err := writeField(record, FieldVersion, []byte("00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(readFieldBytes(updated, FieldVersion), []byte("00")) {
		t.Fatalf("version field not updated")
	}
	if !bytes.Equal(readFieldBytes(record, FieldVersion), make([]byte, 2)) {
		t.Fatalf("writeField mutated the input record")
	}
}
