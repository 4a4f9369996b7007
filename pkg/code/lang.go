package code

import (
	"errors"
	"fmt"
	"reflect"
)

// lang stores the per-language message texts of a code.
// The service speaks German to clients by default; English is the fallback
// used when a message has no German text.
type lang struct {
	de string // German
	en string // English
}

// Default client-facing language is German.
var lng = "de"

const FALLBACK_LNG = "en"

// GetMessage returns the message for the globally selected language,
// falling back to English when the selected field is empty.
func (l lang) GetMessage() string {
	if lng == "" {
		lng = FALLBACK_LNG
	}
	val := reflect.ValueOf(l)
	field := val.FieldByName(lng)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", lng)
}

// GetSupportedLanguages returns all languages the lang type carries.
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang selects the client-facing message language.
func SetGlobalDefaultLang(language string) error {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			lng = language
			return nil
		}
	}
	lng = FALLBACK_LNG
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang returns the selected message language.
func GetGlobalDefaultLang() string {
	return lng
}
