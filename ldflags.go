package main

import (
	"strings"
)

// calcLdflags filters a captured linker command line down to the flags a
// downstream link step still needs. Arguments keep their relative order;
// the scan carries a single bit of state for parametric flag values.
func calcLdflags(rawArgs []string) []string {
	ldflags := make([]string, 0, len(rawArgs))
	nextArgIsFlagValue := false
	for _, arg := range rawArgs {
		switch {
		case nextArgIsFlagValue:
			// Value of a parametric flag, e.g. the path in `-L <path>`.
			// Kept verbatim even if it matches no rule on its own.
			nextArgIsFlagValue = false
		case strings.HasSuffix(arg, ".rlib"):
			// Built-in Rust library, e.g. `libstd-8524caae8408aac2.rlib`.
			continue
		case strings.HasSuffix(arg, ".crate.allocator.rcgu.o"):
			// Compiler-generated object holding allocator symbols such as
			// `__rust_alloc` and `__rust_oom`. Only exists because rustc
			// runs with `-Csave-temps`.
			continue
		case strings.HasSuffix(arg, ".lib"):
			// Windows static/import libraries (e.g. `ws2_32.lib`), minus
			// rustc's choice of C runtime (msvcrt*.lib).
			if strings.HasPrefix(arg, "msvcrt") {
				continue
			}
		case arg == "-l" || arg == "-L":
			// `-l <name>`: link with library (GCC style).
			// `-L <path>`: linker search path (GCC style).
			nextArgIsFlagValue = true
		case arg == "-Wl,--start-group" || arg == "-Wl,--end-group":
			// Archive group markers (GCC style), kept as a pair.
		case strings.HasPrefix(strings.ToUpper(arg), "/LIBPATH:"):
			// `/LIBPATH:<path>`: linker search path (Microsoft style).
		default:
			continue
		}
		ldflags = append(ldflags, arg)
	}
	return ldflags
}
