// Package coursekey parses and canonicalizes course run identifiers.
//
// Two serializations are accepted: the current "course-v1:Org+Course+Run"
// form and the legacy "Org/Course/Run" form. The string form of a parsed
// key is used as the storage key for organization-course linkages, so both
// forms of the same key normalize to the same string.
package coursekey

import (
	"fmt"
	"regexp"
	"strings"
)

const prefix = "course-v1:"

// fields of a course key may contain word characters plus a small set of
// separators. Percent signs show up in url-encoded keys.
var fieldRe = regexp.MustCompile(`^[A-Za-z0-9_.~%-]+$`)

// InvalidCourseKeyError is returned when a course identifier is empty or
// not structurally valid.
type InvalidCourseKeyError struct {
	Key string
}

func (e *InvalidCourseKeyError) Error() string {
	return fmt.Sprintf("the CourseKey you have provided is not valid: %q", e.Key)
}

// CourseKey identifies a single course run.
type CourseKey struct {
	Org    string
	Course string
	Run    string

	legacy bool
}

// Parse parses a course key from either serialization.
func Parse(s string) (CourseKey, error) {
	if s == "" {
		return CourseKey{}, &InvalidCourseKeyError{Key: s}
	}

	var parts []string
	legacy := false
	if rest, ok := strings.CutPrefix(s, prefix); ok {
		parts = strings.Split(rest, "+")
	} else {
		parts = strings.Split(s, "/")
		legacy = true
	}

	if len(parts) != 3 {
		return CourseKey{}, &InvalidCourseKeyError{Key: s}
	}
	for _, part := range parts {
		if !fieldRe.MatchString(part) {
			return CourseKey{}, &InvalidCourseKeyError{Key: s}
		}
	}

	return CourseKey{
		Org:    parts[0],
		Course: parts[1],
		Run:    parts[2],
		legacy: legacy,
	}, nil
}

// String returns the serialization the key was parsed from. Legacy keys
// keep their legacy form, everything else serializes as course-v1.
func (k CourseKey) String() string {
	if k.legacy {
		return fmt.Sprintf("%s/%s/%s", k.Org, k.Course, k.Run)
	}
	return fmt.Sprintf("%s%s+%s+%s", prefix, k.Org, k.Course, k.Run)
}

// Normalize parses s and returns its canonical string form.
func Normalize(s string) (string, error) {
	key, err := Parse(s)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

// IsValid reports whether s parses as a course key.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
