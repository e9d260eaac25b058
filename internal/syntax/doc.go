// Package syntax assigns a syntax class to every character of a line.
//
// A RuleSet holds one compiled regular expression per Class. Classes are
// tried in a fixed priority order:
//
//	Constant, Keyword, SecondaryWord, Preprocessor, DataType, Comment
//
// and any character matched by none of them is Other. Classify sweeps the
// line once, left to right, by grapheme cluster. For every rule it keeps a
// cursor into that rule's ordered list of non-overlapping matches; a cursor
// advances once the sweep position reaches the end of its current match.
// A cluster takes the class of the first rule, in priority order, whose
// current match covers the cluster's starting byte.
//
// Rule sets are produced by the loader package from rule files and picked
// per document by a Registry. A nil *RuleSet classifies every character as
// Other.
package syntax
