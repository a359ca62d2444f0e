// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package rules

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// Sink receives rules as they are produced.
type Sink interface {
	Write(rule Rule) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(rule Rule) error

// Write calls f(rule).
func (f SinkFunc) Write(rule Rule) error {
	return f(rule)
}

// ReportWriter is a Sink writing report lines to an io.Writer.
// Call Flush when done.
type ReportWriter struct {
	w     *bufio.Writer
	count int
}

// NewReportWriter returns a ReportWriter writing to w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: bufio.NewWriter(w)}
}

// Write appends one report line.
func (r *ReportWriter) Write(rule Rule) error {
	writeRule(r.w, rule)
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write rule: %w", err)
	}
	r.count++
	return nil
}

// Flush flushes buffered lines to the underlying writer.
func (r *ReportWriter) Flush() error {
	return r.w.Flush()
}

// Count returns the number of rules written.
func (r *ReportWriter) Count() int {
	return r.count
}

// WriteReport writes one line per rule:
//
//	(bread, milk) --> (eggs) \tsupport: 3
func WriteReport(w io.Writer, rules []Rule) error {
	rw := NewReportWriter(w)
	for _, rule := range rules {
		if err := rw.Write(rule); err != nil {
			return err
		}
	}
	return rw.Flush()
}

// WriteJSON writes rules as a JSON array.
func WriteJSON(w io.Writer, rules []Rule) error {
	if rules == nil {
		rules = []Rule{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rules); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return nil
}

// stringWriter is satisfied by *bufio.Writer and *strings.Builder.
type stringWriter interface {
	WriteString(s string) (int, error)
}

func writeRule(w stringWriter, r Rule) {
	writeSet(w, r.Antecedent)
	_, _ = w.WriteString(" --> ")
	writeSet(w, r.Consequent)
	_, _ = w.WriteString(" \tsupport: ")
	_, _ = w.WriteString(strconv.Itoa(r.Support))
}

func writeSet(w stringWriter, items []string) {
	_, _ = w.WriteString("(")
	for i, item := range items {
		if i > 0 {
			_, _ = w.WriteString(", ")
		}
		_, _ = w.WriteString(item)
	}
	_, _ = w.WriteString(")")
}
