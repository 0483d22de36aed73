package sauce

import (
	"testing"
	"time"
)

func sampleBlock() *SauceBlock {
	d := time.Date(1994, 8, 31, 0, 0, 0, 0, time.UTC)
	b := NewSauceBlock(MediaInfo{
		FileType: 1, // ANSi
		DataType: DataTypeCharacter,
		FileSize: 8900,
		TInfo1:   80,
		TInfo2:   250,
		TFlags:   17,
	}, "00", "twilight", "notepid", "acid", )
	b.Date = &d
	return b
}

func TestEncodeDecodeRecordRoundtrip(t *testing.T) {
	b := sampleBlock()
	record := encodeRecord(b)
	if len(record) != RecordSize {
		t.Fatalf("len(record) = %d, want %d", len(record), RecordSize)
	}
	got, err := decodeRecord(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != b.Title || got.Author != b.Author || got.Group != b.Group {
		t.Fatalf("got %+v, want %+v", got, b)
	}
	if got.Date == nil || !got.Date.Equal(*b.Date) {
		t.Fatalf("date mismatch: got %v, want %v", got.Date, b.Date)
	}
	if got.Media.FileSize != b.Media.FileSize || got.Media.TInfo1 != b.Media.TInfo1 {
		t.Fatalf("media mismatch: got %+v, want %+v", got.Media, b.Media)
	}
}

func TestEncodeRecordRejectsUnresolvedFileType(t *testing.T) {
	b := NewSauceBlock(MediaInfo{FileType: 250, DataType: DataTypeCharacter}, "00", "t", "a", "g")
	record := encodeRecord(b)
	got, err := decodeRecord(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Media.DataType != DataTypeNone || got.Media.FileType != 0 {
		t.Fatalf("expected coercion to none/0, got %+v", got.Media)
	}
}

func TestDecodeRecordWrongLengthIsNoSauce(t *testing.T) {
	if _, err := decodeRecord(make([]byte, RecordSize-1)); err != ErrNoSauce {
		t.Fatalf("got %v, want ErrNoSauce", err)
	}
	bad := make([]byte, RecordSize)
	copy(bad, []byte("NOPE!"))
	if _, err := decodeRecord(bad); err != ErrNoSauce {
		t.Fatalf("got %v, want ErrNoSauce", err)
	}
}

func TestDecodeRecordSentinelIsInvalidSauce(t *testing.T) {
	record := make([]byte, RecordSize)
	copy(record, sauceID[:])
	if _, err := decodeRecord(record); err != ErrInvalidSauce {
		t.Fatalf("got %v, want ErrInvalidSauce", err)
	}
}

func TestDecodeRecordNoDateIsNil(t *testing.T) {
	b := NewSauceBlock(MediaInfo{}, "00", "t", "a", "g")
	record := encodeRecord(b)
	got, err := decodeRecord(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != nil {
		t.Fatalf("expected nil date, got %v", got.Date)
	}
}

func TestEncodeDecodeCommentsRoundtrip(t *testing.T) {
	b := sampleBlock()
	b.AddComments("line one", "", "line three", "   ", "last")
	encoded := encodeComments(b)
	lines, err := decodeComments(encoded, recordCommentLines(encodeRecord(b)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5: %#v", len(lines), lines)
	}
	if lines[1] != "" {
		t.Fatalf("expected blank line preserved, got %q", lines[1])
	}
}

func TestDecodeCommentsZeroExpectedSkipsBuffer(t *testing.T) {
	lines, err := decodeComments([]byte("garbage"), 0)
	if err != nil || lines != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", lines, err)
	}
}

func TestDecodeCommentsMissingSignatureIsNoComments(t *testing.T) {
	buf := make([]byte, MinCommentBlock)
	if _, err := decodeComments(buf, 1); err != ErrNoComments {
		t.Fatalf("got %v, want ErrNoComments", err)
	}
}

func TestDecodeCommentsToleratesShortBlock(t *testing.T) {
	b := &SauceBlock{Comments: []string{"a", "b", "c"}}
	full := encodeComments(b)
	short := full[:len(commentID)+CommentLineSize] // only one full line present
	lines, err := decodeComments(short, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
}

func TestDecodeCommentLineAllNulIsNoValue(t *testing.T) {
	if _, ok := decodeCommentLine(make([]byte, CommentLineSize)); ok {
		t.Fatalf("expected ok=false for all-NUL line")
	}
}

func TestDecodeCommentLineBlankIsKept(t *testing.T) {
	line := make([]byte, CommentLineSize)
	for i := range line {
		line[i] = ' '
	}
	got, ok := decodeCommentLine(line)
	if !ok || got != "" {
		t.Fatalf("got (%q, %v), want (\"\", true)", got, ok)
	}
}
