package fontset

import "strings"

// Windows language IDs for the locales we can ask the name table
// about. Unknown locales fall back to US English, which is also what
// every name table in the wild actually carries.
var msLangIDs = map[string]uint16{
	"en-us": 0x0409,
	"en-gb": 0x0809,
	"de-de": 0x0407,
	"fr-fr": 0x040C,
	"es-es": 0x0C0A,
	"it-it": 0x0410,
	"nl-nl": 0x0413,
	"pl-pl": 0x0415,
	"pt-br": 0x0416,
	"ru-ru": 0x0419,
	"sv-se": 0x041D,
	"ja-jp": 0x0411,
	"ko-kr": 0x0412,
	"zh-cn": 0x0804,
	"zh-tw": 0x0404,
}

// LanguageID maps a BCP 47 locale onto its Windows language ID.
func LanguageID(locale string) uint16 {
	if id, ok := msLangIDs[strings.ToLower(locale)]; ok {
		return id
	}
	return msLangIDs["en-us"]
}
