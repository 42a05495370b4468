// Package debug provides the loggers used by the layout engine and the
// command-line tool.
//
// When the BOXLAYOUT_DEBUG environment variable is set to a file path, engine
// debug records are appended to that file as JSON lines. Otherwise, engine
// logging is a no-op. New builds the console logger of the CLI.
package debug
