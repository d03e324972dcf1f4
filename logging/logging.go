// SPDX-License-Identifier: MIT
// Package logging configures logrus for the ticketrail CLI.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Formatter renders "LEVEL [time] message k=v ..." with keys sorted.
type Formatter struct{}

// Format converts a logrus entry into one log line.
func (f Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	level := strings.ToUpper(entry.Level.String())
	fmt.Fprintf(b, "%s [%s] %-24s", level, entry.Time.Format(time.StampMilli), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%+v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New returns a logger writing to out at the named level
// (debug, info, warn, error, ...).
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(Formatter{})
	l.SetLevel(lvl)

	return l, nil
}
