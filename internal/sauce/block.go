package sauce

import (
	"strings"
	"time"
)

// MediaInfo is the media-level portion of a SauceBlock: the raw
// (file_type, data_type) classification plus the six type-dependent
// slots, before any media-specific interpretation (spec §3).
type MediaInfo struct {
	FileType uint8
	DataType DataType
	FileSize uint64
	TInfo1   uint16
	TInfo2   uint16
	TInfo3   uint16
	TInfo4   uint16
	TFlags   uint8
	// TInfoS is nil when the slot decoded to "no value" (spec §4.6's
	// zero-filled-vs-empty-string distinction), set otherwise.
	TInfoS *string
}

// SauceBlock is the logical, immutable aggregate a decode produces and
// an encode consumes (spec §3). Comment lines live here, not on the
// wire record; CommentLines() is a derived count.
type SauceBlock struct {
	Version string
	Title   string
	Author  string
	Group   string
	// Date is nil when the record carried no parseable date ("no date").
	Date     *time.Time
	Comments []string
	Media    MediaInfo
}

// NewSauceBlock builds a block from explicit media info and field
// values; Comments starts empty.
func NewSauceBlock(media MediaInfo, version, title, author, group string) *SauceBlock {
	return &SauceBlock{
		Version: version,
		Title:   title,
		Author:  author,
		Group:   group,
		Media:   media,
	}
}

// CommentLines returns the comment count that encoding this block would
// produce (clamped to the representable 0..255 range).
func (b *SauceBlock) CommentLines() int {
	if len(b.Comments) > MaxCommentLines {
		return MaxCommentLines
	}
	return len(b.Comments)
}

// FormattedComments joins the comment lines with sep.
func (b *SauceBlock) FormattedComments(sep string) string {
	return strings.Join(b.Comments, sep)
}

// PrependComment inserts line as the first comment.
func (b *SauceBlock) PrependComment(line string) {
	b.Comments = append([]string{line}, b.Comments...)
}

// AddComments appends lines to the comment list in order.
func (b *SauceBlock) AddComments(lines ...string) {
	b.Comments = append(b.Comments, lines...)
}

// ClearComments removes every comment line.
func (b *SauceBlock) ClearComments() {
	b.Comments = nil
}

// MediaTypeID resolves this block's (file_type, data_type) to a media id.
func (b *SauceBlock) MediaTypeID() MediaID {
	return ResolveMedia(b.Media.FileType, b.Media.DataType)
}

// DataTypeID returns the block's raw data type.
func (b *SauceBlock) DataTypeID() DataType {
	return b.Media.DataType
}

// MimeType derives a MIME type from the resolved media type, falling
// back to "application/octet-stream" for unresolved media. This mirrors
// the convenience method the wider SAUCE Go corpus exposes (see
// DESIGN.md's grounding for the supplemented feature).
func (b *SauceBlock) MimeType() string {
	switch b.MediaTypeID() {
	case "bitmap_gif":
		return "image/gif"
	case "bitmap_png":
		return "image/png"
	case "bitmap_jpg":
		return "image/jpeg"
	case "bitmap_bmp":
		return "image/bmp"
	case "archive_zip":
		return "application/zip"
	case "archive_rar":
		return "application/vnd.rar"
	case "binary_text":
		return "text/x-binarytext"
	case "xbin":
		return "text/x-xbin"
	case "executable":
		return "application/octet-stream"
	case "character_ansi":
		return "text/x-ansi"
	case "character_ascii":
		return "text/plain"
	case "character_html":
		return "text/html"
	default:
		return "application/octet-stream"
	}
}

// Detail is one entry of the flat descriptor Details() produces: a
// named, typed field suitable for a UI to render without knowing about
// media-type interpretation rules.
type Detail struct {
	Name  string
	Value any
}

// Details merges record-level fields with media-level slot
// interpretation (L4/L5) into a flat ordered descriptor, the form L11's
// spec calls for ("interpretation... for UIs").
func (b *SauceBlock) Details() []Detail {
	id := b.MediaTypeID()
	details := []Detail{
		{"version", b.Version},
		{"title", b.Title},
		{"author", b.Author},
		{"group", b.Group},
		{"date", b.Date},
		{"file_size", b.Media.FileSize},
		{"data_type", b.Media.DataType.String()},
		{"media_type", string(id)},
		{"comment_lines", b.CommentLines()},
		{"mime_type", b.MimeType()},
	}

	slots := []struct {
		slot MediaSlot
		raw  any
	}{
		{SlotTInfo1, b.Media.TInfo1},
		{SlotTInfo2, b.Media.TInfo2},
		{SlotTInfo3, b.Media.TInfo3},
		{SlotTInfo4, b.Media.TInfo4},
		{SlotTFlags, b.Media.TFlags},
	}
	for _, s := range slots {
		iv := Interpret(id, s.slot, s.raw)
		if iv.Name == MeaningNone {
			continue
		}
		details = append(details, Detail{string(iv.Name), iv.Value})
	}
	if b.Media.TInfoS != nil {
		iv := Interpret(id, SlotTInfoS, *b.Media.TInfoS)
		name := string(iv.Name)
		if name == "" {
			name = "t_info_s"
		}
		details = append(details, Detail{name, iv.Value})
	}
	return details
}

// TInfo1Detail, TInfo2Detail, TInfo3Detail, TInfo4Detail, TFlagsDetail
// and TInfoSDetail expose slot-level interpretation individually, for
// callers that want one slot rather than the full Details() merge.
func (b *SauceBlock) TInfo1Detail() InterpretedValue {
	return Interpret(b.MediaTypeID(), SlotTInfo1, b.Media.TInfo1)
}

func (b *SauceBlock) TInfo2Detail() InterpretedValue {
	return Interpret(b.MediaTypeID(), SlotTInfo2, b.Media.TInfo2)
}

func (b *SauceBlock) TInfo3Detail() InterpretedValue {
	return Interpret(b.MediaTypeID(), SlotTInfo3, b.Media.TInfo3)
}

func (b *SauceBlock) TInfo4Detail() InterpretedValue {
	return Interpret(b.MediaTypeID(), SlotTInfo4, b.Media.TInfo4)
}

func (b *SauceBlock) TFlagsDetail() InterpretedValue {
	return Interpret(b.MediaTypeID(), SlotTFlags, b.Media.TFlags)
}

func (b *SauceBlock) TInfoSDetail() InterpretedValue {
	s := ""
	if b.Media.TInfoS != nil {
		s = *b.Media.TInfoS
	}
	return Interpret(b.MediaTypeID(), SlotTInfoS, s)
}
