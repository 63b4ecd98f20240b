// Copyright (C) 2026 The semcore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logx is a small leveled logger in the spirit of the teacher's
// core/log package, trimmed to the three severities the core actually emits
// (§6.4): noisy, info, warning. The full core/log machinery (context-value
// propagation, pluggable styles, broadcast handlers) serves gapid's
// multi-process client/server architecture and has no component to drive it
// here, so it is not ported; see DESIGN.md.
package logx

import (
	"fmt"
	"io"
	"os"
)

// Severity is the level of a log message, ordered from least to most
// important.
type Severity int

const (
	Noisy Severity = iota
	Info
	Warning
)

func (s Severity) String() string {
	switch s {
	case Noisy:
		return "noisy"
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Logger writes leveled messages to an output writer, dropping anything
// below its configured minimum severity.
type Logger struct {
	out io.Writer
	min Severity
}

// New returns a Logger writing to out, filtering below min.
func New(out io.Writer, min Severity) *Logger {
	return &Logger{out: out, min: min}
}

// Discard returns a Logger that drops every message; useful in tests that
// don't care about diagnostics.
func Discard() *Logger {
	return New(io.Discard, Warning+1)
}

// Default returns a Logger writing warnings and above to stderr.
func Default() *Logger {
	return New(os.Stderr, Warning)
}

func (l *Logger) log(sev Severity, format string, args ...interface{}) {
	if l == nil || sev < l.min {
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", sev, fmt.Sprintf(format, args...))
}

// Noisy logs an extremely verbose diagnostic.
func (l *Logger) Noisy(format string, args ...interface{}) { l.log(Noisy, format, args...) }

// Info logs a minor informational message.
func (l *Logger) Info(format string, args ...interface{}) { l.log(Info, format, args...) }

// Warning logs a per-entity recoverable failure: the containing entity was
// dropped, but the rest of the model continues.
func (l *Logger) Warning(format string, args ...interface{}) { l.log(Warning, format, args...) }
