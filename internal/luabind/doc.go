// Package luabind exposes the binding pipeline to Lua scripts.
//
// Scripts declare bindings through a global "bind" table:
//
//	bind.keys([[leader-map : "g d" goto.definition]])
//
//	local leader = bind.definer([[:keymaps normal :prefix "SPC"]])
//	leader([["f" file.find "b" buffer.switch]])
//
//	for _, name in ipairs(bind.list()) do print(name) end
//
// Malformed declarations raise a Lua error carrying the stream
// position, and install nothing.
package luabind
