package sauce

import (
	"bytes"
	"errors"
	"io"
)

// File is the seekable byte-stream handle L10 operates against. Spec §1
// treats the concrete file primitive as an injected collaborator; *os.File
// satisfies this interface directly, and so does any in-memory stand-in a
// test wants to substitute.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	Truncate(size int64) error
}

func fileSize(f File) (int64, error) {
	return f.Seek(0, io.SeekEnd)
}

func readAt(f File, offset int64, n int) ([]byte, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// isRecoverableCommentReadErr reports whether err looks like the
// "stale pointer ran off the front of the file" condition spec §7
// documents as a tolerated NoComments, rather than a genuine system
// failure that should propagate.
func isRecoverableCommentReadErr(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// FileReadSauce decodes the SauceBlock trailing f, scanning backward
// from end-of-stream. Reads never load more than one SAUCE block's
// worth of data.
func FileReadSauce(f File) (*SauceBlock, error) {
	size, err := fileSize(f)
	if err != nil {
		return nil, wrapIO("seek", err)
	}
	if size < RecordSize {
		return nil, ErrNoSauce
	}

	record, err := readAt(f, size-RecordSize, RecordSize)
	if err != nil {
		return nil, wrapIO("read record", err)
	}
	if !isRecordBytes(record) {
		return nil, ErrNoSauce
	}

	block, err := decodeRecord(record)
	if err != nil {
		return nil, err
	}

	n := recordCommentLines(record)
	if n == 0 {
		return block, nil
	}

	cbSize := CommentBlockSize(int(n))
	commentOffset := size - RecordSize - int64(cbSize)
	if commentOffset < 0 {
		// Bad comment_lines pointer: treat as though there were none.
		return block, nil
	}

	cb, err := readAt(f, commentOffset, cbSize)
	if err != nil {
		if isRecoverableCommentReadErr(err) {
			return block, nil
		}
		return nil, wrapIO("read comments", err)
	}
	if !bytes.Equal(cb[:CommentIDSize], commentID[:]) {
		// Pointer landed somewhere that isn't a comment block.
		return block, nil
	}
	lines, err := decodeComments(cb, n)
	if err != nil {
		return block, nil
	}
	block.Comments = lines
	return block, nil
}

// FileReadRaw returns the raw record and comment bytes trailing f.
func FileReadRaw(f File) (record, comments []byte, err error) {
	size, err := fileSize(f)
	if err != nil {
		return nil, nil, wrapIO("seek", err)
	}
	if size < RecordSize {
		return nil, nil, ErrNoSauce
	}
	record, err = readAt(f, size-RecordSize, RecordSize)
	if err != nil {
		return nil, nil, wrapIO("read record", err)
	}
	if !isRecordBytes(record) {
		return nil, nil, ErrNoSauce
	}
	n := recordCommentLines(record)
	if n == 0 {
		return record, nil, nil
	}
	cbSize := CommentBlockSize(int(n))
	commentOffset := size - RecordSize - int64(cbSize)
	if commentOffset < 0 {
		return record, nil, nil
	}
	cb, err := readAt(f, commentOffset, cbSize)
	if err != nil {
		if isRecoverableCommentReadErr(err) {
			return record, nil, nil
		}
		return nil, nil, wrapIO("read comments", err)
	}
	if !bytes.Equal(cb[:CommentIDSize], commentID[:]) {
		return record, nil, nil
	}
	return record, cb, nil
}

// FileReadComments decodes just the comment lines trailing f.
func FileReadComments(f File) ([]string, error) {
	block, err := FileReadSauce(f)
	if err != nil {
		return nil, err
	}
	return block.Comments, nil
}

// fileContentsSize computes the offset at which the file's own content
// ends and the SAUCE block begins. When the expected comment block is
// missing or mis-shaped, the bytes in that region are treated as
// contents, not SAUCE — the policy is deliberate: a reader does not
// assume a broken SAUCE writer's intent (spec §4.10).
func fileContentsSize(f File) (int64, error) {
	size, err := fileSize(f)
	if err != nil {
		return 0, err
	}
	if size < RecordSize {
		return size, nil
	}
	record, err := readAt(f, size-RecordSize, RecordSize)
	if err != nil {
		return 0, err
	}
	if !isRecordBytes(record) {
		return size, nil
	}
	n := recordCommentLines(record)
	if n == 0 {
		return size - RecordSize, nil
	}
	cbSize := CommentBlockSize(int(n))
	commentOffset := size - RecordSize - int64(cbSize)
	if commentOffset < 0 {
		return size - RecordSize, nil
	}
	cb, err := readAt(f, commentOffset, cbSize)
	if err != nil {
		if isRecoverableCommentReadErr(err) {
			return size - RecordSize, nil
		}
		return 0, err
	}
	if !isCommentBlockBytes(cb) {
		return size - RecordSize, nil
	}
	return commentOffset, nil
}

// FileReadContents returns the byte length of f's content, stripping a
// trailing SAUCE block if present.
func FileReadContents(f File) (int64, error) {
	n, err := fileContentsSize(f)
	if err != nil {
		return 0, wrapIO("seek", err)
	}
	return n, nil
}

// FileHasSauce reports whether f ends in a valid SAUCE record.
func FileHasSauce(f File) (bool, error) {
	_, err := FileReadSauce(f)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNoSauce) {
		return false, nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return false, err
	}
	// ErrInvalidSauce: a record is present, just malformed.
	return true, nil
}

// FileHasComments reports whether f has a valid comment block.
func FileHasComments(f File) (bool, error) {
	block, err := FileReadSauce(f)
	if err != nil {
		if errors.Is(err, ErrNoSauce) || errors.Is(err, ErrInvalidSauce) {
			return false, nil
		}
		return false, err
	}
	return len(block.Comments) > 0, nil
}

// FileWrite encodes block and writes it onto f, truncating at the new
// contents boundary before writing the new trailer (spec §7's
// truncate-before-write discipline: a crash mid-write can lose the old
// SAUCE block, but never leaves a stale comment block next to a fresh
// record).
func FileWrite(f File, block *SauceBlock) error {
	contentsSize, err := fileContentsSize(f)
	if err != nil {
		return wrapIO("seek", err)
	}

	prefixEOF := true
	if contentsSize > 0 {
		last, err := readAt(f, contentsSize-1, 1)
		if err != nil {
			return wrapIO("read eof probe", err)
		}
		prefixEOF = last[0] != eofSentinel
	}

	if err := f.Truncate(contentsSize); err != nil {
		return wrapIO("truncate", err)
	}

	encodedRecord := encodeRecord(block)
	encodedComments := encodeComments(block)

	buf := make([]byte, 0, 1+len(encodedComments)+len(encodedRecord))
	if prefixEOF {
		buf = append(buf, eofSentinel)
	}
	buf = append(buf, encodedComments...)
	buf = append(buf, encodedRecord...)

	if _, err := f.Seek(contentsSize, io.SeekStart); err != nil {
		return wrapIO("seek", err)
	}
	if _, err := f.Write(buf); err != nil {
		return wrapIO("write", err)
	}
	return nil
}

// FileRemoveComments strips the comment block from f in place, zeroing
// the record's comment_lines field. A file with no record, or with
// comment_lines already 0, is left untouched.
func FileRemoveComments(f File) error {
	size, err := fileSize(f)
	if err != nil {
		return wrapIO("seek", err)
	}
	if size < RecordSize {
		return nil
	}
	record, err := readAt(f, size-RecordSize, RecordSize)
	if err != nil {
		return wrapIO("read record", err)
	}
	if !isRecordBytes(record) {
		return nil
	}
	n := recordCommentLines(record)
	if n == 0 {
		return nil
	}

	recordPos := size - RecordSize
	cbSize := CommentBlockSize(int(n))
	commentOffset := recordPos - int64(cbSize)
	truncateAt := recordPos
	if commentOffset >= 0 {
		cb, err := readAt(f, commentOffset, cbSize)
		if err == nil && isCommentBlockBytes(cb) {
			truncateAt = commentOffset
		}
	}

	updated, err := writeField(record, FieldCommentLines, []byte{0})
	if err != nil {
		return err
	}
	if err := f.Truncate(truncateAt); err != nil {
		return wrapIO("truncate", err)
	}
	if _, err := f.Seek(truncateAt, io.SeekStart); err != nil {
		return wrapIO("seek", err)
	}
	if _, err := f.Write(updated); err != nil {
		return wrapIO("write", err)
	}
	return nil
}

// FileRemoveSauce truncates f at the start of its SAUCE block, leaving
// only its contents.
func FileRemoveSauce(f File) error {
	size, err := fileContentsSize(f)
	if err != nil {
		return wrapIO("seek", err)
	}
	if err := f.Truncate(size); err != nil {
		return wrapIO("truncate", err)
	}
	return nil
}
