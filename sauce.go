// Package sauce reads, writes, repairs and introspects SAUCE (Standard
// Architecture for Universal Comment Extensions) metadata blocks: the
// 128-byte trailer, plus optional comment block, that the text-mode art
// scene appends to ANSi, ASCII, XBIN, BIN, tracker module, bitmap,
// archive and executable files.
//
// This package is a thin façade over internal/sauce, which does the
// actual work. It exists so the core can evolve its internal package
// layout freely while callers import a single stable entry point —
// the "external collaborator" pattern spec.md §1 calls for.
package sauce

import "github.com/notepid/go-sauce/internal/sauce"

// Block is the decoded, immutable SAUCE aggregate: record fields plus
// comment lines plus media-level interpretation helpers.
type Block = sauce.SauceBlock

// MediaInfo is the media-level portion of a Block: the raw
// (file_type, data_type) classification and its six type-dependent
// slots, before media-specific interpretation.
type MediaInfo = sauce.MediaInfo

// DataType is one of the nine canonical SAUCE data types.
type DataType = sauce.DataType

// MediaID names a resolved (file_type, data_type) media classification.
type MediaID = sauce.MediaID

// FontID names an entry of the font registry.
type FontID = sauce.FontID

// Detail is one entry of a Block's flattened descriptor.
type Detail = sauce.Detail

// Error sentinels. NoSauce and NoComments are normal, expected
// conditions; InvalidSauce signals a structurally broken record;
// InvalidLength signals a precondition violation on a raw field write.
var (
	ErrNoSauce       = sauce.ErrNoSauce
	ErrNoComments    = sauce.ErrNoComments
	ErrInvalidSauce  = sauce.ErrInvalidSauce
	ErrInvalidLength = sauce.ErrInvalidLength
)

// Data type constants.
const (
	DataTypeNone       = sauce.DataTypeNone
	DataTypeCharacter  = sauce.DataTypeCharacter
	DataTypeBitmap     = sauce.DataTypeBitmap
	DataTypeVector     = sauce.DataTypeVector
	DataTypeAudio      = sauce.DataTypeAudio
	DataTypeBinaryText = sauce.DataTypeBinaryText
	DataTypeXBin       = sauce.DataTypeXBin
	DataTypeArchive    = sauce.DataTypeArchive
	DataTypeExecutable = sauce.DataTypeExecutable
)

// NewBlock constructs a Block from media info and the version, title,
// author and group fields, with no comments yet; add comments before Write.
func NewBlock(media MediaInfo, version, title, author, group string) *Block {
	return sauce.NewSauceBlock(media, version, title, author, group)
}

// ReadSauce decodes the Block trailing buf.
func ReadSauce(buf []byte) (*Block, error) { return sauce.ReadSauce(buf) }

// ReadRaw returns the raw, undecoded record and comment bytes trailing buf.
func ReadRaw(buf []byte) (record, comments []byte, err error) { return sauce.ReadRaw(buf) }

// ReadComments decodes just the comment lines trailing buf.
func ReadComments(buf []byte) ([]string, error) { return sauce.ReadComments(buf) }

// ReadContents returns buf with any trailing SAUCE block stripped.
func ReadContents(buf []byte) []byte { return sauce.ReadContents(buf) }

// HasSauce reports whether buf ends in a valid SAUCE record.
func HasSauce(buf []byte) bool { return sauce.HasSauce(buf) }

// HasComments reports whether buf has a valid comment block.
func HasComments(buf []byte) bool { return sauce.HasComments(buf) }

// Write encodes block onto the contents of buf and returns the new buffer.
func Write(buf []byte, block *Block) []byte { return sauce.Write(buf, block) }

// RemoveComments strips the comment block from buf, leaving the record
// in place with comment_lines zeroed.
func RemoveComments(buf []byte) []byte { return sauce.RemoveComments(buf) }

// RemoveSauce strips the entire SAUCE block from buf.
func RemoveSauce(buf []byte) []byte { return sauce.RemoveSauce(buf) }

// File is the seekable byte-stream handle the file-backed operations
// require; *os.File satisfies it directly.
type File = sauce.File

// FileReadSauce decodes the Block trailing f, scanning backward from
// end-of-stream without reading the whole file.
func FileReadSauce(f File) (*Block, error) { return sauce.FileReadSauce(f) }

// FileReadRaw returns the raw record and comment bytes trailing f.
func FileReadRaw(f File) (record, comments []byte, err error) { return sauce.FileReadRaw(f) }

// FileReadComments decodes just the comment lines trailing f.
func FileReadComments(f File) ([]string, error) { return sauce.FileReadComments(f) }

// FileReadContents returns the byte length of f's content, excluding
// any trailing SAUCE block.
func FileReadContents(f File) (int64, error) { return sauce.FileReadContents(f) }

// FileHasSauce reports whether f ends in a valid SAUCE record.
func FileHasSauce(f File) (bool, error) { return sauce.FileHasSauce(f) }

// FileHasComments reports whether f has a valid comment block.
func FileHasComments(f File) (bool, error) { return sauce.FileHasComments(f) }

// FileWrite encodes block and writes it onto f in place.
func FileWrite(f File, block *Block) error { return sauce.FileWrite(f, block) }

// FileRemoveComments strips the comment block from f in place.
func FileRemoveComments(f File) error { return sauce.FileRemoveComments(f) }

// FileRemoveSauce truncates f at the start of its SAUCE block.
func FileRemoveSauce(f File) error { return sauce.FileRemoveSauce(f) }

// ResolveMedia maps (file_type, data_type) to a media id.
func ResolveMedia(fileType uint8, dataType DataType) MediaID {
	return sauce.ResolveMedia(fileType, dataType)
}

// MediaHandle is the inverse of ResolveMedia.
func MediaHandle(id MediaID) (fileType uint8, dataType DataType, ok bool) {
	return sauce.MediaHandle(id)
}

// FontByID looks a font up by its symbolic id.
func FontByID(id FontID) (*sauce.Font, bool) { return sauce.FontByID(id) }

// FontByName looks a font up by its exact SAUCE TInfoS spelling.
func FontByName(name string) (*sauce.Font, bool) { return sauce.FontByName(name) }
