// Package domain contains the puzzle entities shared across solvers: the
// scratch Card and Deck, and the parse error taxonomy every solver reports
// through. It has no knowledge of files, configuration or logging.
package domain
