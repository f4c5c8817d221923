// Package initialize provides the "anchorver init" command which creates
// the .anchorver.yaml configuration file, interactively where the
// terminal allows it.
package initialize
