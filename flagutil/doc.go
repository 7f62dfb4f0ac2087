// Package flagutil assembles Edge command-line flag sets.
//
// All builders are pure: they never read the environment or the
// filesystem, and never mutate their input slice. The headless builder
// takes the WSL decision as an argument for the same reason.
//
// The --js-flags sanitizer exists because the process spawn layer quotes
// arguments itself; a user-supplied flag that arrives pre-quoted
// ("--js-flags='--expose-gc'") would otherwise be double-escaped by the
// time it reaches the browser. Sanitization is idempotent.
package flagutil
