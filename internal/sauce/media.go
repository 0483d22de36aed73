package sauce

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/notepid/go-sauce/internal/sauce/tables"
)

// MediaID is a symbolic media type identifier (e.g. "character_ansi").
type MediaID string

// MediaNone is the media id resolved when (file_type, data_type) has no
// registry entry.
const MediaNone MediaID = "none_none"

// MediaSlot names one of the six type-dependent record slots.
type MediaSlot int

const (
	SlotTInfo1 MediaSlot = iota
	SlotTInfo2
	SlotTInfo3
	SlotTInfo4
	SlotTFlags
	SlotTInfoS
)

// Meaning is the semantic label the media registry assigns to a slot for
// a given media type; the empty Meaning means the slot is unused.
type Meaning string

const (
	MeaningNone           Meaning = ""
	MeaningCharacterWidth Meaning = "character_width"
	MeaningNumberOfLines  Meaning = "number_of_lines"
	MeaningPixelWidth     Meaning = "pixel_width"
	MeaningPixelHeight    Meaning = "pixel_height"
	MeaningPixelDepth     Meaning = "pixel_depth"
	MeaningSampleRate     Meaning = "sample_rate"
	MeaningAnsiFlags      Meaning = "ansi_flags"
	MeaningFontID         Meaning = "font_id"
)

// MediaType is one entry of the media registry.
type MediaType struct {
	ID          MediaID
	FileType    uint8
	DataType    DataType
	Name        string
	AnyFileType bool
	meanings    [6]Meaning
}

// Meanings returns the ordered slot->meaning mapping for m.
func (m *MediaType) Meanings() map[MediaSlot]Meaning {
	out := make(map[MediaSlot]Meaning, 6)
	for slot, meaning := range m.meanings {
		if meaning != MeaningNone {
			out[MediaSlot(slot)] = meaning
		}
	}
	return out
}

type mediaYAML struct {
	Media []struct {
		MediaID     string `yaml:"media_id"`
		FileType    uint8  `yaml:"file_type"`
		DataType    uint8  `yaml:"data_type"`
		Name        string `yaml:"name"`
		AnyFileType bool   `yaml:"any_file_type"`
		TInfo1      string `yaml:"t_info_1"`
		TInfo2      string `yaml:"t_info_2"`
		TInfo3      string `yaml:"t_info_3"`
		TInfo4      string `yaml:"t_info_4"`
		TFlags      string `yaml:"t_flags"`
		TInfoS      string `yaml:"t_info_s"`
	} `yaml:"media"`
}

type mediaKey struct {
	fileType uint8
	dataType DataType
}

var (
	mediaOnce       sync.Once
	mediaByID       map[MediaID]*MediaType
	mediaByKey      map[mediaKey]*MediaType
	mediaAnyFile    map[DataType]*MediaType // data types where the media resolves for any file_type
	mediaList       []*MediaType
)

func loadMedia() {
	mediaOnce.Do(func() {
		var doc mediaYAML
		if err := yaml.Unmarshal(tables.MediaYAML, &doc); err != nil {
			panic(fmt.Sprintf("sauce: embedded media table is malformed: %v", err))
		}
		mediaByID = make(map[MediaID]*MediaType, len(doc.Media))
		mediaByKey = make(map[mediaKey]*MediaType, len(doc.Media))
		mediaAnyFile = make(map[DataType]*MediaType)
		mediaList = make([]*MediaType, 0, len(doc.Media))
		for _, m := range doc.Media {
			mt := &MediaType{
				ID:          MediaID(m.MediaID),
				FileType:    m.FileType,
				DataType:    DataType(m.DataType),
				Name:        m.Name,
				AnyFileType: m.AnyFileType,
			}
			mt.meanings = [6]Meaning{
				SlotTInfo1: Meaning(m.TInfo1),
				SlotTInfo2: Meaning(m.TInfo2),
				SlotTInfo3: Meaning(m.TInfo3),
				SlotTInfo4: Meaning(m.TInfo4),
				SlotTFlags: Meaning(m.TFlags),
				SlotTInfoS: Meaning(m.TInfoS),
			}
			mediaByID[mt.ID] = mt
			mediaByKey[mediaKey{mt.FileType, mt.DataType}] = mt
			if mt.AnyFileType {
				mediaAnyFile[mt.DataType] = mt
			}
			mediaList = append(mediaList, mt)
		}
	})
}

// ResolveMedia maps (file_type, data_type) to a media id. The
// binary_text (data_type 5) row matches any file_type, per spec §3/§4.4.
// Returns MediaNone if nothing matches.
func ResolveMedia(fileType uint8, dataType DataType) MediaID {
	loadMedia()
	if mt, ok := mediaAnyFile[dataType]; ok {
		return mt.ID
	}
	if mt, ok := mediaByKey[mediaKey{fileType, dataType}]; ok {
		return mt.ID
	}
	return MediaNone
}

// MediaHandle is the inverse of ResolveMedia: the (file_type, data_type)
// pair that produces id. ok is false for an unknown id.
func MediaHandle(id MediaID) (fileType uint8, dataType DataType, ok bool) {
	loadMedia()
	mt, ok := mediaByID[id]
	if !ok {
		return 0, DataTypeNone, false
	}
	return mt.FileType, mt.DataType, true
}

// MediaMeanings returns the slot meanings declared for id.
func MediaMeanings(id MediaID) map[MediaSlot]Meaning {
	loadMedia()
	mt, ok := mediaByID[id]
	if !ok {
		return nil
	}
	return mt.Meanings()
}

// InterpretedValue is the result of interpreting a single type-dependent
// slot: its semantic name and a typed value, one of uint8, uint16,
// AnsiFlags, FontID, or string.
type InterpretedValue struct {
	Name  Meaning
	Value any
}

// Interpret decodes raw, a slot's raw record value, according to the
// meaning the media registry assigns that slot for id. Slots with no
// declared meaning decode to the raw value unchanged (identity).
func Interpret(id MediaID, slot MediaSlot, raw any) InterpretedValue {
	loadMedia()
	mt, ok := mediaByID[id]
	if !ok {
		return InterpretedValue{Name: MeaningNone, Value: raw}
	}
	meaning := mt.meanings[slot]
	switch meaning {
	case MeaningAnsiFlags:
		switch v := raw.(type) {
		case uint8:
			return InterpretedValue{Name: meaning, Value: DecodeAnsiFlags(v)}
		case int:
			return InterpretedValue{Name: meaning, Value: ansiFlagsFromInt(v)}
		default:
			return InterpretedValue{Name: meaning, Value: raw}
		}
	case MeaningFontID:
		if name, ok := raw.(string); ok {
			if f, ok := FontByName(name); ok {
				return InterpretedValue{Name: meaning, Value: f.ID}
			}
		}
		return InterpretedValue{Name: meaning, Value: raw}
	case MeaningNone:
		return InterpretedValue{Name: MeaningNone, Value: raw}
	default:
		return InterpretedValue{Name: meaning, Value: raw}
	}
}

// MediaIDsForDataType returns every media id registered under dataType.
func MediaIDsForDataType(dataType DataType) []MediaID {
	loadMedia()
	var out []MediaID
	for _, mt := range mediaList {
		if mt.DataType == dataType {
			out = append(out, mt.ID)
		}
	}
	return out
}

// FileTypesForDataType returns every file_type byte registered under
// dataType (excluding any-file-type rows, which by definition cover all
// of them).
func FileTypesForDataType(dataType DataType) []uint8 {
	loadMedia()
	var out []uint8
	for _, mt := range mediaList {
		if mt.DataType == dataType && !mt.AnyFileType {
			out = append(out, mt.FileType)
		}
	}
	return out
}

// AllMediaTypes returns every registered media type, in table order.
func AllMediaTypes() []*MediaType {
	loadMedia()
	out := make([]*MediaType, len(mediaList))
	copy(out, mediaList)
	return out
}
