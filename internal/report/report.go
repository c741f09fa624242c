package report

import (
	"fmt"
	"io"

	"github.com/ThomasCrouzet/simdedupe/internal/dedupe"
)

const (
	NoDuplicates = "You don't have duplicate simulators!"
	Separator    = "--- duplicate of ---"
	Explanation  = "Each duplicate was determined as the one created later than the 'original'."
)

// Header returns the summary line for n duplicates.
func Header(n int) string {
	plural := ""
	if n > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Looks like you have %d duplicate simulator%s:", n, plural)
}

// Write prints the duplicate report. With nothing found it prints only
// the NoDuplicates line.
func Write(w io.Writer, result *dedupe.Result) error {
	if result.Count() == 0 {
		_, err := fmt.Fprintln(w, NoDuplicates)
		return err
	}

	p := &printer{w: w}
	p.line(Header(result.Count()))
	for _, pair := range result.Pairs {
		p.line("")
		p.line(pair.Duplicate.String())
		p.line(Separator)
		p.line(pair.Original.String())
	}
	p.line("")
	p.line(Explanation)

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
