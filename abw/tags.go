package abw

// TagID is a dense integer enumeration over the recognized AbiWord element
// names. Unknown element names map to TagUnknown; their children are still
// walked so that any text or nested recognized tags are not lost.
type TagID int

const (
	TagUnknown TagID = iota
	TagAbiword
	TagSection
	TagP
	TagC
	TagS
	TagPagesize
	TagD
	TagL
	TagA
	TagFoot
	TagEndnote
	TagTable
	TagCell
	TagImage
	TagBr
	TagCbr
	TagPbr
	TagField
	TagMetadata
	TagHistory
	TagRevisions
	TagIgnoredwords
	TagFrame
)

var tagNames = map[string]TagID{
	"abiword":      TagAbiword,
	"section":      TagSection,
	"p":            TagP,
	"c":            TagC,
	"s":            TagS,
	"pagesize":     TagPagesize,
	"d":            TagD,
	"l":            TagL,
	"a":            TagA,
	"foot":         TagFoot,
	"endnote":      TagEndnote,
	"table":        TagTable,
	"cell":         TagCell,
	"image":        TagImage,
	"br":           TagBr,
	"cbr":          TagCbr,
	"pbr":          TagPbr,
	"field":        TagField,
	"metadata":     TagMetadata,
	"history":      TagHistory,
	"revisions":    TagRevisions,
	"ignoredwords": TagIgnoredwords,
	"frame":        TagFrame,
}

var tagIDNames = func() map[TagID]string {
	m := make(map[TagID]string, len(tagNames))
	for name, id := range tagNames {
		m[id] = name
	}
	return m
}()

// LookupTag maps an element's local name to its TagID, returning
// TagUnknown for anything not in the fixed enumeration.
func LookupTag(name string) TagID {
	if id, ok := tagNames[name]; ok {
		return id
	}
	return TagUnknown
}

func (t TagID) String() string {
	if name, ok := tagIDNames[t]; ok {
		return name
	}
	return "unknown"
}
