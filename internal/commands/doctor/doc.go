// Package doctor provides the "anchorver doctor" command, a read-only
// checkup of the configuration file, the toolchain managers on PATH and
// the current directory.
package doctor
