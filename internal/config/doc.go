// Package config loads binding declaration files.
//
// A declaration file is a YAML, TOML or JSON document holding a list
// of declaration streams in the surface syntax plus the parser flags
// to apply to them:
//
//	dwim: true
//	bindings:
//	  - 'leader-map : "g d" goto.definition "g r" goto.references'
//	  - ':keymaps normal :prefix "SPC" "f" file.find'
//
// Each bindings entry is an independent stream: entries are joined
// with reset separators before parsing so defaults never leak between
// them. The Watcher reloads a file on change, for configurations
// edited while the consumer is running.
package config
