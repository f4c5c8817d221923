// Package discovery walks a project tree and gathers the version facts
// its manifest files declare. A probe reads one directory; the walker
// recurses from the root, merging probe results and stopping as soon as
// the facts are complete. No inference happens here, so an empty result
// is valid walker output.
package discovery
