// Package loader reads syntax rule files into syntax rule sets.
//
// A rule file declares one regular expression and one color per syntax
// class. The original flat JSON schema is the reference:
//
//	{
//	  "name": "go",
//	  "extensions": ["go"],
//	  "s_constant": "\\b[0-9]+\\b",
//	  "s_keyword": "\\b(func|return|if)\\b",
//	  "s_comment": "//.*",
//	  "c_constant": [255, 128, 0],
//	  "c_comment": "#75715e"
//	}
//
// The same keys are accepted from TOML, YAML and Lua files (a Lua chunk
// returning a table). Patterns and colors may also be grouped under
// "patterns" and "colors" tables keyed by class name. Colors are either
// [r, g, b] triples in 0..255 or "#rrggbb" strings.
//
// Any failure to read, decode or compile a rule file is reported as an
// error matching ErrMalformedRuleFile; callers then run without syntax
// classification for that file type.
package loader
