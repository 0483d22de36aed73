package sauce

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// encodeRecord composes the 16 fields of b, in declared order, into a
// 128-byte record. If (file_type, data_type) does not resolve in the
// media registry, both fields are rewritten as the none/zero pair so
// the result is always decodable (spec §4.7).
func encodeRecord(b *SauceBlock) []byte {
	record := make([]byte, RecordSize)
	put := func(id Field, raw []byte) { copy(record[FieldOffset(id):], raw) }

	put(FieldID, sauceID[:])
	put(FieldVersion, encodeVersion(b.Version))
	put(FieldTitle, encodeSpacePadded(b.Title, FieldSize(FieldTitle)))
	put(FieldAuthor, encodeSpacePadded(b.Author, FieldSize(FieldAuthor)))
	put(FieldGroup, encodeSpacePadded(b.Group, FieldSize(FieldGroup)))
	if b.Date != nil {
		put(FieldDate, encodeDate(*b.Date))
	} else {
		put(FieldDate, []byte(sauceNoDate))
	}
	put(FieldFileSize, encodeFileSize(b.Media.FileSize))

	dataType := DataTypeOf(b.Media.DataType.IntOf())
	fileType := b.Media.FileType
	if dataType != DataTypeBinaryText && ResolveMedia(fileType, dataType) == MediaNone {
		dataType = DataTypeNone
		fileType = 0
	}
	record[FieldOffset(FieldDataType)] = encodeDataType(dataType)
	record[FieldOffset(FieldFileType)] = fileType

	put(FieldTInfo1, encodeU16LE(int(b.Media.TInfo1)))
	put(FieldTInfo2, encodeU16LE(int(b.Media.TInfo2)))
	put(FieldTInfo3, encodeU16LE(int(b.Media.TInfo3)))
	put(FieldTInfo4, encodeU16LE(int(b.Media.TInfo4)))
	record[FieldOffset(FieldCommentLines)] = encodeCommentLines(b.CommentLines())
	record[FieldOffset(FieldTFlags)] = encodeU8(int(b.Media.TFlags))
	if b.Media.TInfoS != nil {
		put(FieldTInfoS, encodeCString(*b.Media.TInfoS, FieldSize(FieldTInfoS)))
	}
	return record
}

// sauceNoDate is written when a block has no date; it is not a value
// decodeDate will itself accept back (month 00 is calendar-invalid),
// so round-tripping a date-less block through decode again yields nil.
const sauceNoDate = "00000000"

// isEmptySentinelRecord reports whether record is the all-zero-after-ID
// sentinel that buggy writers produce by reserving space without
// populating it: "SAUCE" + two zero bytes + 121 zero bytes.
func isEmptySentinelRecord(record []byte) bool {
	if record[FieldOffset(FieldVersion)] != 0 || record[FieldOffset(FieldVersion)+1] != 0 {
		return false
	}
	for _, c := range record[FieldOffset(FieldTitle):] {
		if c != 0 {
			return false
		}
	}
	return true
}

// decodeRecord parses a 128-byte record. A length mismatch or missing
// "SAUCE" id yields ErrNoSauce; the zero-filled sentinel record and an
// unparseable version both yield ErrInvalidSauce. Every other per-field
// decode failure is tolerated, falling back to the L6 default for that
// field (spec §4.7).
func decodeRecord(record []byte) (*SauceBlock, error) {
	if len(record) != RecordSize || !bytes.Equal(record[FieldOffset(FieldID):FieldOffset(FieldID)+FieldSize(FieldID)], sauceID[:]) {
		return nil, ErrNoSauce
	}
	if isEmptySentinelRecord(record) {
		return nil, ErrInvalidSauce
	}

	version, ok := decodeVersion(readFieldBytes(record, FieldVersion))
	if !ok {
		return nil, ErrInvalidSauce
	}

	b := &SauceBlock{Version: version}
	b.Title, _ = decodeSpacePadded(readFieldBytes(record, FieldTitle))
	b.Author, _ = decodeSpacePadded(readFieldBytes(record, FieldAuthor))
	b.Group, _ = decodeSpacePadded(readFieldBytes(record, FieldGroup))
	if date, ok := decodeDate(readFieldBytes(record, FieldDate)); ok {
		b.Date = &date
	}

	b.Media.FileSize = uint64(decodeU32LE(readFieldBytes(record, FieldFileSize)))
	b.Media.DataType = decodeDataType(readFieldBytes(record, FieldDataType))
	b.Media.FileType = readFieldBytes(record, FieldFileType)[0]
	b.Media.TInfo1 = decodeU16LE(readFieldBytes(record, FieldTInfo1))
	b.Media.TInfo2 = decodeU16LE(readFieldBytes(record, FieldTInfo2))
	b.Media.TInfo3 = decodeU16LE(readFieldBytes(record, FieldTInfo3))
	b.Media.TInfo4 = decodeU16LE(readFieldBytes(record, FieldTInfo4))
	b.Media.TFlags = decodeU8(readFieldBytes(record, FieldTFlags))
	if s, ok := decodeCString(readFieldBytes(record, FieldTInfoS)); ok {
		b.Media.TInfoS = &s
	}
	return b, nil
}

// recordCommentLines reads the comment_lines field directly, without
// decoding the rest of the record.
func recordCommentLines(record []byte) uint8 {
	return decodeCommentLines(readFieldBytes(record, FieldCommentLines))
}

// encodeComments emits "COMNT" followed by each comment line padded or
// truncated to 64 bytes. An empty comment list encodes to zero bytes —
// no block is written (spec §4.7).
func encodeComments(b *SauceBlock) []byte {
	if len(b.Comments) == 0 {
		return nil
	}
	out := make([]byte, 0, CommentBlockSize(len(b.Comments)))
	out = append(out, commentID[:]...)
	for _, line := range b.Comments {
		out = append(out, padTruncate(defaultTranscoder.encode(line), CommentLineSize, spacePad)...)
	}
	return out
}

// decodeCommentLine decodes one 64-byte comment line. Unlike the
// title/author/group codec, a legitimately blank (space-padded) line is
// a real value, not "no value" — only an all-NUL line (garbage past the
// actual comment data, e.g. from a truncated block) decodes to "no
// value" and is dropped by the caller.
func decodeCommentLine(b []byte) (string, bool) {
	allNUL := true
	for _, c := range b {
		if c != 0 {
			allNUL = false
			break
		}
	}
	if allNUL {
		return "", false
	}
	text := defaultTranscoder.decode(b)
	if !utf8.ValidString(text) {
		text = rescueTranscoder.decode(b)
	}
	return strings.TrimRight(text, " \t\r\n\x00"), true
}

// decodeComments parses a comment block given the expected line count
// from the record. expectedLines == 0 yields an empty list without
// inspecting buf at all. A missing or malformed "COMNT" prefix is
// ErrNoComments. Otherwise lines are peeled off 64 bytes at a time until
// expectedLines is reached or buf is exhausted (tolerating a short
// block); a line that decodes to "no value" is silently dropped.
func decodeComments(buf []byte, expectedLines uint8) ([]string, error) {
	if expectedLines == 0 {
		return nil, nil
	}
	if len(buf) < MinCommentBlock || !bytes.Equal(buf[:CommentIDSize], commentID[:]) {
		return nil, ErrNoComments
	}
	body := buf[CommentIDSize:]
	lines := make([]string, 0, expectedLines)
	for i := 0; i < int(expectedLines); i++ {
		start := i * CommentLineSize
		end := start + CommentLineSize
		if end > len(body) {
			break
		}
		if s, ok := decodeCommentLine(body[start:end]); ok {
			lines = append(lines, s)
		}
	}
	return lines, nil
}
