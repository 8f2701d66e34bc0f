// Trace2html renders one or more officehours trace files (written with
// officehours -trace) into a single HTML report: per-run event tallies and
// a timeline table.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"rsc.io/markdown"

	"github.com/tasim/officehours/internal/sim"
)

type trace struct {
	name   string // file base name, used as the section heading
	events []sim.Event
}

func main() {
	outputFile := flag.String("o", "report.html", "output file name")
	title := flag.String("title", "Office hours report", "report title")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: trace2html [-o report.html] [-title t] <trace>...")
		os.Exit(1)
	}

	if err := run(*outputFile, *title, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(data []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(data)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *errWriter) Err() error { return w.err }

func run(outputFile, title string, files []string) (err error) {
	// Traces are independent; parse them concurrently, report in argument order.
	traces := make([]*trace, len(files))
	var g errgroup.Group
	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			tr, err := scanTrace(filename)
			if err != nil {
				return fmt.Errorf("error processing %s: %w", filename, err)
			}
			traces[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() { err = errors.Join(err, outFile.Close()) }()

	ew := &errWriter{w: outFile}
	fmt.Fprintf(ew, top, title)
	fmt.Fprintln(ew, renderMarkdown(reportMarkdown(title, traces)))
	fmt.Fprintln(ew, bottom)
	return ew.Err()
}

// scanTrace parses one trace file: one tab-separated record per line, as
// written by sim.Event.Record.
func scanTrace(filename string) (*trace, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tr := &trace{name: filepath.Base(filename)}
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			return nil, fmt.Errorf("%s:%d: malformed record: want 5 fields, got %d", filename, lineNum, len(fields))
		}
		kind, ok := sim.ParseKind(fields[0])
		if !ok {
			return nil, fmt.Errorf("%s:%d: unknown event kind %q", filename, lineNum, fields[0])
		}
		e := sim.Event{Kind: kind}
		for i, dst := range []*int{&e.Student, &e.Waiting, &e.Finished, &e.Units} {
			n, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad number %q", filename, lineNum, fields[i+1])
			}
			*dst = n
		}
		tr.events = append(tr.events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tr, nil
}

// reportMarkdown builds the whole report as markdown; rendering to HTML is
// left to rsc.io/markdown.
func reportMarkdown(title string, traces []*trace) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, tr := range traces {
		fmt.Fprintf(&b, "## %s\n\n", tr.name)
		fmt.Fprintf(&b, "%d events: %s\n\n", len(tr.events), tallyLine(tr.events))

		b.WriteString("| # | actor | event | waiting | finished |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for i, e := range tr.events {
			fmt.Fprintf(&b, "| %d | %s | %s | %d | %d |\n", i+1, actor(e), e.Kind, e.Waiting, e.Finished)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func actor(e sim.Event) string {
	if e.Student == 0 {
		return "TA"
	}
	return fmt.Sprintf("student %d", e.Student)
}

func tallyLine(events []sim.Event) string {
	counts := make(map[sim.Kind]int)
	for _, e := range events {
		counts[e.Kind]++
	}
	var parts []string
	for k := sim.StudentProgramming; k <= sim.TADone; k++ {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
		}
	}
	return strings.Join(parts, ", ")
}

func renderMarkdown(s string) string {
	p := markdown.Parser{Table: true}
	doc := p.Parse(s)
	return markdown.ToHTML(doc)
}

const top = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body>
`

const bottom = `</body>
</html>`
