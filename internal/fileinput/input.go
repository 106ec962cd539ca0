package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/plenty/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il *Line) String() string     { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Text returns the line content, without any trailing line feed.
func (il *Line) Text() string { return il.Buffer.String() }

// Input implements sequential line reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	cur   io.Reader
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadLine reads runes from the current input stream until the next line
// feed, rolling the Scan line over into Last and returning its text. The
// final line of a stream need not end in a line feed. After the last queued
// stream is exhausted, io.EOF is returned.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return "", io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				in.nextLine()
				return in.Last.Text(), nil
			}
			in.Scan.WriteRune(r)
			continue
		}

		loc := in.Scan.Location
		partial := in.Scan.Len() > 0
		if partial {
			in.nextLine()
		}
		in.closeIn()
		if err != io.EOF {
			return "", fmt.Errorf("%v: %w", loc, err)
		}
		if partial {
			return in.Last.Text(), nil
		}
	}
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

// Close closes the stream currently being read, if any, and if it is an
// io.Closer; streams still queued are left alone.
func (in *Input) Close() error {
	return in.closeIn()
}

func (in *Input) closeIn() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur, in.rr = nil, nil
	return err
}

func (in *Input) nextIn() bool {
	in.closeIn()
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur = r
		in.rr = runeio.NewReader(r)
		in.Scan.Reset()
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
