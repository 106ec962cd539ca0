package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// If r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedReader{rr, impl.Name()}
	}
	return rr
}

// NamedReader attaches a name to r, which fileinput reports in locations.
// Any io.Closer implemented by r is preserved.
func NamedReader(name string, r io.Reader) io.Reader {
	nr := namedReader{NewReader(r), name}
	if cl, ok := r.(io.Closer); ok {
		return namedReadCloser{nr, cl}
	}
	return nr
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedReader struct {
	Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

type namedReadCloser struct {
	namedReader
	io.Closer
}
