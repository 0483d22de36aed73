package sauce

// This file is L9: the high-level reader/writer pair operating on an
// in-memory buffer holding the whole file (or a tail slice large enough
// to cover the SAUCE block). File-backed operations (L10) are a thin
// positional wrapper around the same logic.

// ReadSauce decodes the SauceBlock trailing buf. A missing record is
// ErrNoSauce; a structurally broken record is ErrInvalidSauce. A
// missing or malformed comment block is tolerated — the record decoded
// fine, so the result simply has no comments, not an error.
func ReadSauce(buf []byte) (*SauceBlock, error) {
	_, record, comments := splitAllBytes(buf)
	if record == nil {
		return nil, ErrNoSauce
	}
	block, err := decodeRecord(record)
	if err != nil {
		return nil, err
	}
	n := recordCommentLines(record)
	lines, err := decodeComments(comments, n)
	if err != nil {
		// Missing/malformed comments with a well-formed record is a
		// normal, tolerated outcome: the block simply has no comments.
		block.Comments = nil
		return block, nil
	}
	block.Comments = lines
	return block, nil
}

// ReadRaw returns the raw record and comment bytes trailing buf,
// undecoded.
func ReadRaw(buf []byte) (record, comments []byte, err error) {
	record, comments = splitSauceBytes(buf)
	if record == nil {
		return nil, nil, ErrNoSauce
	}
	return record, comments, nil
}

// ReadComments decodes just the comment lines trailing buf.
func ReadComments(buf []byte) ([]string, error) {
	block, err := ReadSauce(buf)
	if err != nil {
		return nil, err
	}
	return block.Comments, nil
}

// ReadContents returns buf with any trailing SAUCE block stripped.
func ReadContents(buf []byte) []byte {
	contents, _, _ := splitAllBytes(buf)
	return contents
}

// HasSauce reports whether buf ends in a valid SAUCE record.
func HasSauce(buf []byte) bool {
	_, record := splitRecordBytes(buf)
	return record != nil
}

// HasComments reports whether buf has a valid comment block recognized
// against its record's comment_lines field.
func HasComments(buf []byte) bool {
	_, _, comments := splitAllBytes(buf)
	return comments != nil
}

// Write encodes block and assembles it onto the contents of buf,
// inserting an EOF sentinel if one isn't already present. Order of
// operations matters: the record is encoded before comments are
// emitted, and everything is written as a single returned buffer, so a
// caller never observes a half-written state (spec §7).
func Write(buf []byte, block *SauceBlock) []byte {
	encodedRecord := encodeRecord(block)
	encodedComments := encodeComments(block)
	body := rawContents(buf, true)

	out := make([]byte, 0, len(body)+len(encodedComments)+len(encodedRecord))
	out = append(out, body...)
	out = append(out, encodedComments...)
	out = append(out, encodedRecord...)
	return out
}

// RemoveComments strips the comment block from buf, zeroing the
// record's comment_lines field, and leaves the record itself in place.
// A buffer with no record is returned unchanged.
func RemoveComments(buf []byte) []byte {
	contents, record, _ := splitAllBytes(buf)
	if record == nil {
		return buf
	}
	updated, err := writeField(record, FieldCommentLines, []byte{0})
	if err != nil {
		// FieldCommentLines is always exactly 1 byte; this cannot fail.
		return buf
	}
	out := make([]byte, 0, len(contents)+len(updated))
	out = append(out, contents...)
	out = append(out, updated...)
	return out
}

// RemoveSauce strips the SAUCE block (record and comments, if any) from
// buf, preserving any EOF sentinel that was already part of contents.
func RemoveSauce(buf []byte) []byte {
	return rawContents(buf, false)
}
