/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a per-run append-only log buffer. The buffer is
// materialized as a log.txt artifact at the catalog root at the end of a
// run, and can optionally mirror lines to a writer for live output.
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Log accumulates diagnostic lines for one export run. Construct one per
// run and pass it explicitly; there is no package-global instance.
type Log struct {
	lines  []string
	mirror io.Writer
}

// New creates an empty run log.
func New() *Log {
	return &Log{}
}

// NewMirrored creates a run log that also writes each line to w.
func NewMirrored(w io.Writer) *Log {
	return &Log{mirror: w}
}

// Infof appends a formatted informational line.
func (l *Log) Infof(format string, args ...any) {
	l.append(fmt.Sprintf(format, args...))
}

// Warnf appends a formatted warning line.
func (l *Log) Warnf(format string, args ...any) {
	l.append("warning: " + fmt.Sprintf(format, args...))
}

func (l *Log) append(line string) {
	l.lines = append(l.lines, line)
	if l.mirror != nil {
		fmt.Fprintln(l.mirror, line)
	}
}

// Lines returns the accumulated lines in order.
func (l *Log) Lines() []string {
	return l.lines
}

// Contents returns the newline-joined log text for the log.txt artifact.
func (l *Log) Contents() string {
	return strings.Join(l.lines, "\n")
}
