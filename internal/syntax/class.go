package syntax

import (
	"fmt"
	"strings"
)

// Class is the syntax class of a character.
type Class uint8

// Syntax classes. The order of the non-Other classes is their matching
// priority.
const (
	Other Class = iota
	Constant
	Keyword
	SecondaryWord
	Preprocessor
	DataType
	Comment

	numClasses
)

// Priority lists the matchable classes in the order rules are tried.
var Priority = [...]Class{Constant, Keyword, SecondaryWord, Preprocessor, DataType, Comment}

// classNames are the rule-file names of each class.
var classNames = [numClasses]string{
	Other:         "other",
	Constant:      "constant",
	Keyword:       "keyword",
	SecondaryWord: "secondary_word",
	Preprocessor:  "preproc",
	DataType:      "data_type",
	Comment:       "comment",
}

// String returns the rule-file name of the class.
func (c Class) String() string {
	if c < numClasses {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Classes returns every class, Other first.
func Classes() []Class {
	out := make([]Class, 0, numClasses)
	for c := Other; c < numClasses; c++ {
		out = append(out, c)
	}
	return out
}

// ParseClass maps a class name to a Class. "preprocessor" is accepted as
// an alias of "preproc".
func ParseClass(name string) (Class, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "preprocessor" {
		return Preprocessor, true
	}
	for c, n := range classNames {
		if n == name {
			return Class(c), true
		}
	}
	return Other, false
}
