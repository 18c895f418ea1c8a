// Package log builds toolbelt's slog logger. Records pass through a
// SecureHandler that masks attributes whose key or value looks like a
// secret, so generated passwords and tokens never reach the log file.
package log
