package lang

import "sort"

// Code is an ISO 639-1 language code.
type Code string

const (
	English    Code = "en"
	Spanish    Code = "es"
	French     Code = "fr"
	German     Code = "de"
	Italian    Code = "it"
	Portuguese Code = "pt"
	Polish     Code = "pl"
	Dutch      Code = "nl"
	Russian    Code = "ru"
	Ukrainian  Code = "uk"
	Japanese   Code = "ja"
	Chinese    Code = "zh"
)

// Dialect identifies a regional accent of a study language.
type Dialect string

const (
	AmericanEnglish   Dialect = "american-english"
	BritishEnglish    Dialect = "british-english"
	AustralianEnglish Dialect = "australian-english"
	ScottishEnglish   Dialect = "scottish-english"
	IrishEnglish      Dialect = "irish-english"
)

// Language describes a language the product supports.
type Language struct {
	Code     Code      `json:"code"`
	Name     string    `json:"name"`
	Dialects []Dialect `json:"dialects,omitempty"`
}

// HasMultipleDialects reports whether learners must pick a dialect
// before studying this language.
func (l Language) HasMultipleDialects() bool {
	return len(l.Dialects) > 1
}

var languages = map[Code]Language{
	English: {Code: English, Name: "English", Dialects: []Dialect{
		AmericanEnglish, BritishEnglish, AustralianEnglish, ScottishEnglish, IrishEnglish,
	}},
	Spanish:    {Code: Spanish, Name: "Spanish"},
	French:     {Code: French, Name: "French"},
	German:     {Code: German, Name: "German"},
	Italian:    {Code: Italian, Name: "Italian"},
	Portuguese: {Code: Portuguese, Name: "Portuguese"},
	Polish:     {Code: Polish, Name: "Polish"},
	Dutch:      {Code: Dutch, Name: "Dutch"},
	Russian:    {Code: Russian, Name: "Russian"},
	Ukrainian:  {Code: Ukrainian, Name: "Ukrainian"},
	Japanese:   {Code: Japanese, Name: "Japanese"},
	Chinese:    {Code: Chinese, Name: "Chinese"},
}

// nativeOnly are languages learners may speak natively but cannot study yet.
// Every study language is also a valid mother language.
var nativeOnly = map[Code]Language{
	"ar": {Code: "ar", Name: "Arabic"},
	"bg": {Code: "bg", Name: "Bulgarian"},
	"cs": {Code: "cs", Name: "Czech"},
	"da": {Code: "da", Name: "Danish"},
	"el": {Code: "el", Name: "Greek"},
	"fi": {Code: "fi", Name: "Finnish"},
	"he": {Code: "he", Name: "Hebrew"},
	"hi": {Code: "hi", Name: "Hindi"},
	"hr": {Code: "hr", Name: "Croatian"},
	"hu": {Code: "hu", Name: "Hungarian"},
	"id": {Code: "id", Name: "Indonesian"},
	"ko": {Code: "ko", Name: "Korean"},
	"lt": {Code: "lt", Name: "Lithuanian"},
	"lv": {Code: "lv", Name: "Latvian"},
	"no": {Code: "no", Name: "Norwegian"},
	"ro": {Code: "ro", Name: "Romanian"},
	"sk": {Code: "sk", Name: "Slovak"},
	"sl": {Code: "sl", Name: "Slovenian"},
	"sr": {Code: "sr", Name: "Serbian"},
	"sv": {Code: "sv", Name: "Swedish"},
	"th": {Code: "th", Name: "Thai"},
	"tr": {Code: "tr", Name: "Turkish"},
	"vi": {Code: "vi", Name: "Vietnamese"},
}

// Catalog answers language and dialect questions. The zero value uses the
// built-in language table.
type Catalog struct{}

// Default is the built-in catalog.
var Default = Catalog{}

// Lookup returns the language for code.
func (Catalog) Lookup(code string) (Language, bool) {
	l, ok := languages[Code(code)]
	return l, ok
}

// Supported reports whether code is a language learners can study.
func (c Catalog) Supported(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// SupportedMother reports whether code is accepted as a learner's mother
// language. This is a superset of the study languages.
func (c Catalog) SupportedMother(code string) bool {
	if c.Supported(code) {
		return true
	}
	_, ok := nativeOnly[Code(code)]
	return ok
}

// RequiresDialect reports whether studying code needs a dialect choice.
// Unknown languages never require one.
func (c Catalog) RequiresDialect(code string) bool {
	l, ok := c.Lookup(code)
	return ok && l.HasMultipleDialects()
}

// DialectsOf returns the dialects of code, nil if it has none.
func (c Catalog) DialectsOf(code string) []Dialect {
	l, ok := c.Lookup(code)
	if !ok || len(l.Dialects) == 0 {
		return nil
	}
	out := make([]Dialect, len(l.Dialects))
	copy(out, l.Dialects)
	return out
}

// ValidDialect reports whether dialect belongs to language code.
func (c Catalog) ValidDialect(code, dialect string) bool {
	for _, d := range c.DialectsOf(code) {
		if string(d) == dialect {
			return true
		}
	}
	return false
}

// All returns every study language sorted by code.
func (Catalog) All() []Language {
	return sorted(languages)
}

// MotherLanguages returns every accepted mother language sorted by code,
// without dialects.
func (Catalog) MotherLanguages() []Language {
	out := sorted(languages, nativeOnly)
	for i := range out {
		out[i].Dialects = nil
	}
	return out
}

func sorted(tables ...map[Code]Language) []Language {
	var out []Language
	for _, t := range tables {
		for _, l := range t {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
