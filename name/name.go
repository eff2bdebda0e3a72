// Package name validates section and field identifiers against the VSF
// grammar: ASCII lowercase segments separated by single dots, each segment
// starting with a letter and containing only letters, digits, and
// underscores, with no leading, trailing, or doubled underscore.
package name

import (
	"regexp"

	"github.com/nickspiker/vsf-sub001/errs"
)

var grammar = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

// Validate reports an error if s doesn't match the identifier grammar
// `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`, with the additional constraint
// that no segment may contain a double underscore or end in an
// underscore (both of which the base regex allows but the grammar
// forbids).
func Validate(s string) error {
	if !grammar.MatchString(s) {
		return errs.ErrInvalidName
	}
	for _, segment := range splitDots(s) {
		if segment == "" {
			return errs.ErrInvalidName
		}
		if segment[len(segment)-1] == '_' {
			return errs.ErrInvalidName
		}
		for i := 0; i+1 < len(segment); i++ {
			if segment[i] == '_' && segment[i+1] == '_' {
				return errs.ErrInvalidName
			}
		}
	}

	return nil
}

func splitDots(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}

	return append(out, s[start:])
}

// MustValidate panics if s fails Validate. Reserved for constructors where
// an invalid name is a programmer error (e.g. a section builder called
// with a hardcoded bad name), per the codec's no-panics-in-hot-path
// policy: this is never called from decode paths.
func MustValidate(s string) {
	if err := Validate(s); err != nil {
		panic(err)
	}
}
