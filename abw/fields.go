package abw

import (
	"strings"

	"github.com/pgavlin/abiword-kit/abw/style"
)

// classifyField maps a field's `type` attribute to its output Props, or
// reports ok=false for an unrecognized subtype (the caller logs and drops
// those at debug level). The catalogue mirrors the source's fixed field
// vocabulary: date/time variants with format vectors, document counters,
// file-name display, and metadata mirrors.
func classifyField(typ string, metadata map[string]string) (Props, bool) {
	props := Props{}

	switch {
	case typ == "char_count":
		props["librevenge:field-type"] = "text:character-count"
	case typ == "date":
		props["librevenge:field-type"] = "text:date"
		props["number:automatic-order"] = true
		props["librevenge:value-type"] = "date"
		props["librevenge:format"] = style.ConvertDateFormat("%A, %B %d,%Y")
	case strings.HasPrefix(typ, "date_"):
		props["librevenge:field-type"] = "text:date"
		props["number:automatic-order"] = true
		var format string
		switch typ {
		case "date_ntdlf":
			// default date format: no explicit conversion
		case "date_mmddyy":
			format = "%m/%d/%y"
		case "date_ddmmyy":
			format = "%d/%m/%y"
		case "date_mdy":
			format = "%B %d,%Y"
		case "date_mthdy":
			format = "%b %d,%Y"
		case "date_dfl":
			format = "%a %b %d %H:%M:%S %Y"
		case "date_wkday":
			format = "%A"
		case "date_doy":
			format = "%d"
		default:
			return nil, false
		}
		if format != "" {
			props["librevenge:value-type"] = "date"
			props["librevenge:format"] = style.ConvertDateFormat(format)
		}
	case typ == "datetime_custom":
		props["librevenge:field-type"] = "text:date"
		props["number:automatic-order"] = true
		props["librevenge:value-type"] = "date"
		props["librevenge:format"] = style.ConvertDateFormat("%d/%m/%y %H:%M:%S")
	case typ == "file_name" || typ == "short_file_name":
		props["librevenge:field-type"] = "text:file-name"
		props["text:display"] = "full"
	case typ == "time":
		props["librevenge:field-type"] = "text:time"
		props["number:automatic-order"] = true
	case typ == "time_ampm":
		props["librevenge:field-type"] = "text:time"
		props["number:automatic-order"] = true
		props["librevenge:value-type"] = "time"
		props["librevenge:format"] = style.ConvertDateFormat("%I:%M:%S %p")
	case typ == "time_zone" || typ == "time_miltime":
		return nil, false
	case strings.HasPrefix(typ, "meta_"):
		field, ok := metaFieldType(typ)
		if !ok {
			return nil, false
		}
		props["librevenge:field-type"] = field
	case typ == "page_number":
		props["librevenge:field-type"] = "text:page-number"
	case typ == "page_count":
		props["librevenge:field-type"] = "text:page-count"
	case typ == "para_count":
		props["librevenge:field-type"] = "text:paragraph-count"
	case typ == "word_count":
		props["librevenge:field-type"] = "text:word-count"
	default:
		return nil, false
	}
	return props, true
}

func metaFieldType(typ string) (string, bool) {
	switch typ {
	case "meta_title":
		return "text:title", true
	case "meta_subject":
		return "text:subject", true
	case "meta_creator":
		return "text:creator", true
	case "meta_publisher":
		return "text:printed-by", true
	case "meta_keywords":
		return "text:keywords", true
	case "meta_description":
		return "text:description", true
	case "meta_date":
		return "text:creation-date", true
	case "meta_date_last_changed":
		return "text:modification-date", true
	default:
		return "", false
	}
}

// isSuppressedField reports subtypes that the original source recognizes
// but intentionally emits nothing for (anchors/refs, app metadata,
// mail-merge placeholders), as opposed to subtypes it simply doesn't
// know. Both end up producing no InsertField event, but only the unknown
// ones are worth a debug log.
func isSuppressedField(typ string) bool {
	switch {
	case strings.HasPrefix(typ, "app_"):
		return true
	case typ == "endnote_anch", typ == "endnote_ref":
		return true
	case typ == "footnote_anch", typ == "footnote_ref":
		return true
	case typ == "list_label", typ == "mail_merge":
		return true
	case typ == "toc_list_label":
		return true
	default:
		return false
	}
}
