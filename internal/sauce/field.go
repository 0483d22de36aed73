package sauce

// Field identifies one of the sixteen fixed fields of a SAUCE record.
// The enum order matches declaration order in the record, which is also
// encode order (spec L7: "composes the 16 fields in declared order").
type Field int

const (
	FieldID Field = iota
	FieldVersion
	FieldTitle
	FieldAuthor
	FieldGroup
	FieldDate
	FieldFileSize
	FieldDataType
	FieldFileType
	FieldTInfo1
	FieldTInfo2
	FieldTInfo3
	FieldTInfo4
	FieldCommentLines
	FieldTFlags
	FieldTInfoS
	fieldCount
)

type fieldMeta struct {
	offset int
	size   int
}

// schema is the single source of truth for field layout. Every other
// layer is parametrized by it; duplicating these literals elsewhere is
// how SAUCE implementations drift from each other.
var schema = [fieldCount]fieldMeta{
	FieldID:           {0, 5},
	FieldVersion:      {5, 2},
	FieldTitle:        {7, 35},
	FieldAuthor:       {42, 20},
	FieldGroup:        {62, 20},
	FieldDate:         {82, 8},
	FieldFileSize:     {90, 4},
	FieldDataType:     {94, 1},
	FieldFileType:     {95, 1},
	FieldTInfo1:       {96, 2},
	FieldTInfo2:       {98, 2},
	FieldTInfo3:       {100, 2},
	FieldTInfo4:       {102, 2},
	FieldCommentLines: {104, 1},
	FieldTFlags:       {105, 1},
	FieldTInfoS:       {106, 22},
}

// Fixed sizes and limits that drive every buffer-layout computation in
// this package.
const (
	RecordSize        = 128
	CommentLineSize   = 64
	CommentIDSize     = 5
	MinCommentBlock   = CommentIDSize + CommentLineSize // 69
	MaxCommentLines   = 255
	FileSizeLimit     = 1<<32 - 1
	eofSentinel  byte = 0x1A
)

var (
	sauceID   = [5]byte{'S', 'A', 'U', 'C', 'E'}
	commentID = [5]byte{'C', 'O', 'M', 'N', 'T'}
)

// FieldOffset returns the byte offset of id within a 128-byte record.
func FieldOffset(id Field) int { return schema[id].offset }

// FieldSize returns the declared byte width of id.
func FieldSize(id Field) int { return schema[id].size }

// RequiredFieldIDs returns every field id in declared (encode) order.
func RequiredFieldIDs() []Field {
	ids := make([]Field, fieldCount)
	for i := range ids {
		ids[i] = Field(i)
	}
	return ids
}

// CommentBlockSize returns the byte size of a comment block of n lines,
// or 0 when n == 0 (no block is written for zero comments).
func CommentBlockSize(n int) int {
	if n <= 0 {
		return 0
	}
	return CommentIDSize + CommentLineSize*n
}

// SauceBlockSize returns the total size of a SAUCE block (record plus
// optional comments) holding n comment lines.
func SauceBlockSize(n int) int {
	if n <= 0 {
		return RecordSize
	}
	return RecordSize + CommentBlockSize(n)
}
