package sauce

import "bytes"

// This file is L8: the tolerant, allocation-conscious parsing layer
// that every reader/writer (L9, L10) builds on. Its recognition
// predicates never copy; its splits slice the input buffer rather than
// duplicate it.

// isRecordBytes reports whether b is exactly a 128-byte record: the
// right length, the "SAUCE" id, and not the zero-filled sentinel that
// buggy writers produce.
func isRecordBytes(b []byte) bool {
	return len(b) == RecordSize &&
		bytes.Equal(b[FieldOffset(FieldID):FieldOffset(FieldID)+FieldSize(FieldID)], sauceID[:]) &&
		!isEmptySentinelRecord(b)
}

// isCommentBlockBytes reports whether b is a structurally valid
// comment block: the "COMNT" id and a length that is an exact multiple
// of 64 bytes past it.
func isCommentBlockBytes(b []byte) bool {
	return len(b) >= MinCommentBlock &&
		bytes.Equal(b[:CommentIDSize], commentID[:]) &&
		(len(b)-CommentIDSize)%CommentLineSize == 0
}

// isCommentFragmentBytes is the loose form used by repair tooling: the
// "COMNT" id and enough bytes for at least one line, without the
// multiple-of-64 requirement.
func isCommentFragmentBytes(b []byte) bool {
	return len(b) >= MinCommentBlock && bytes.Equal(b[:CommentIDSize], commentID[:])
}

// splitRecordBytes separates contents from a trailing record. record is
// nil if buf's last 128 bytes aren't a record.
func splitRecordBytes(buf []byte) (contents, record []byte) {
	if len(buf) < RecordSize {
		return buf, nil
	}
	rec := buf[len(buf)-RecordSize:]
	if !isRecordBytes(rec) {
		return buf, nil
	}
	return buf[:len(buf)-RecordSize], rec
}

// splitWithCount is the explicit-n variant: it only recognizes a
// comment block of exactly n lines immediately before the record.
func splitWithCount(buf []byte, n int) (contents, record, comments []byte) {
	contents, record = splitRecordBytes(buf)
	if record == nil {
		return buf, nil, nil
	}
	if n <= 0 {
		return contents, record, nil
	}
	cbSize := CommentBlockSize(n)
	if len(contents) < cbSize {
		return contents, record, nil
	}
	cb := contents[len(contents)-cbSize:]
	if !isCommentBlockBytes(cb) {
		return contents, record, nil
	}
	return contents[:len(contents)-cbSize], record, cb
}

// splitAllBytes locates the trailing record, reads its comment_lines
// field, and — if a matching comment block immediately precedes the
// record — splits out contents, record and comments. A mismatched or
// absent comment block is not an error: contents simply absorbs those
// bytes, and comments is nil.
func splitAllBytes(buf []byte) (contents, record, comments []byte) {
	contents, record = splitRecordBytes(buf)
	if record == nil {
		return buf, nil, nil
	}
	n := int(recordCommentLines(record))
	return splitWithCount(buf, n)
}

// splitSauceBytes is splitAllBytes without the contents return.
func splitSauceBytes(buf []byte) (record, comments []byte) {
	_, record, comments = splitAllBytes(buf)
	return record, comments
}

// readRawField locates the record in buf and slices out the raw bytes
// of field id, without decoding them.
func readRawField(buf []byte, id Field) ([]byte, error) {
	_, record := splitRecordBytes(buf)
	if record == nil {
		return nil, ErrNoSauce
	}
	return readFieldBytes(record, id), nil
}

// writeRawField locates the record in buf and overwrites field id with
// raw, returning the whole rewritten buffer. raw must be exactly
// FieldSize(id) bytes.
func writeRawField(buf []byte, id Field, raw []byte) ([]byte, error) {
	contents, record := splitRecordBytes(buf)
	if record == nil {
		return nil, ErrNoSauce
	}
	newRecord, err := writeField(record, id, raw)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(contents)+len(newRecord))
	out = append(out, contents...)
	out = append(out, newRecord...)
	return out, nil
}

// rawContents returns everything up to the SAUCE block (record plus
// comments, if present). If terminateWithEOF is set and the result
// doesn't already end with the EOF sentinel, one is appended.
func rawContents(buf []byte, terminateWithEOF bool) []byte {
	contents, _, _ := splitAllBytes(buf)
	if !terminateWithEOF {
		return contents
	}
	if len(contents) > 0 && contents[len(contents)-1] == eofSentinel {
		return contents
	}
	out := make([]byte, len(contents)+1)
	copy(out, contents)
	out[len(contents)] = eofSentinel
	return out
}

// cleanContents returns the strict view: everything before the first
// EOF sentinel byte in buf, ignoring SAUCE structure entirely.
func cleanContents(buf []byte) []byte {
	if idx := bytes.IndexByte(buf, eofSentinel); idx >= 0 {
		return buf[:idx]
	}
	return buf
}

// eofTerminated reports whether buf's contents (SAUCE stripped) already
// end with the EOF sentinel.
func eofTerminated(buf []byte) bool {
	contents, _, _ := splitAllBytes(buf)
	return len(contents) > 0 && contents[len(contents)-1] == eofSentinel
}

// eofTerminate returns buf's contents with an EOF sentinel guaranteed
// at the end.
func eofTerminate(buf []byte) []byte {
	return rawContents(buf, true)
}

// matchRecord locates the record in buf. When eofRequired is set, the
// byte immediately before the record must be the EOF sentinel, and the
// match starts at the id byte (after that sentinel) — the sentinel
// itself is not part of the reported range.
func matchRecord(buf []byte, eofRequired bool) (pos, length int, ok bool) {
	if len(buf) < RecordSize {
		return 0, 0, false
	}
	start := len(buf) - RecordSize
	if !isRecordBytes(buf[start:]) {
		return 0, 0, false
	}
	if eofRequired && (start == 0 || buf[start-1] != eofSentinel) {
		return 0, 0, false
	}
	return start, RecordSize, true
}

// matchCommentBlock locates a structurally valid comment block
// immediately preceding the record (a record must exist, since it
// defines where the comment block ends). eofRequired applies to the
// comment block's own leading edge, same convention as matchRecord.
func matchCommentBlock(buf []byte, eofRequired bool) (pos, length int, ok bool) {
	recPos, _, recOK := matchRecord(buf, false)
	if !recOK {
		return 0, 0, false
	}
	n := int(recordCommentLines(buf[recPos : recPos+RecordSize]))
	if n <= 0 {
		return 0, 0, false
	}
	cbSize := CommentBlockSize(n)
	if recPos < cbSize {
		return 0, 0, false
	}
	start := recPos - cbSize
	if !isCommentBlockBytes(buf[start:recPos]) {
		return 0, 0, false
	}
	if eofRequired && (start == 0 || buf[start-1] != eofSentinel) {
		return 0, 0, false
	}
	return start, cbSize, true
}

// matchCommentFragment scans buf for the first "COMNT" signature with
// at least one full line behind it. Unlike matchCommentBlock it does
// not require a record to exist, and does not require the block to be
// an exact multiple of 64 bytes — it is diagnostic tooling for
// malformed files, not a structural guarantee.
func matchCommentFragment(buf []byte, eofRequired bool) (pos, length int, ok bool) {
	idx := bytes.Index(buf, commentID[:])
	if idx < 0 || len(buf)-idx < MinCommentBlock {
		return 0, 0, false
	}
	if eofRequired && (idx == 0 || buf[idx-1] != eofSentinel) {
		return 0, 0, false
	}
	return idx, len(buf) - idx, true
}

// countCommentLines recovers a comment count from the structural byte
// length of the comment block immediately preceding the record, rather
// than trusting the record's comment_lines field — used by repair
// tooling diagnosing a stale or wrong pointer.
func countCommentLines(buf []byte) int {
	recPos, _, recOK := matchRecord(buf, false)
	if !recOK {
		return 0
	}
	region := buf[:recPos]
	idx := bytes.LastIndex(region, commentID[:])
	if idx < 0 {
		return 0
	}
	length := recPos - idx
	if length < MinCommentBlock {
		return 0
	}
	return (length - CommentIDSize) / CommentLineSize
}

// commentLinesField reads the record's comment_lines field directly.
func commentLinesField(buf []byte) (int, error) {
	_, record := splitRecordBytes(buf)
	if record == nil {
		return 0, ErrNoSauce
	}
	return int(recordCommentLines(record)), nil
}
