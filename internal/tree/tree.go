// Package tree draws a heap as a complete binary tree, one row per level.
//
//	   1
//	 3   2
//	5 9 8
package tree

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/trim21/errgo"
)

// Source is the read-only view the renderer needs, *heap.Heap implements it.
type Source[T any] interface {
	Len() int
	Get(i int) (T, bool)
}

// Row is an inclusive range of 1-based tree indexes on one level.
type Row struct {
	Start int
	End   int
}

func (r Row) Size() int {
	return r.End - r.Start + 1
}

// LargestRowSize returns the largest power of 2 not greater than n,
// which is the size of the widest row of a complete tree with n nodes.
func LargestRowSize(n int) int {
	if n <= 0 {
		return 0
	}

	return 1 << (bits.Len(uint(n)) - 1)
}

// Rows splits n nodes into levels, the last one may be partial.
func Rows(n int) []Row {
	if n <= 0 {
		return nil
	}

	rows := make([]Row, 0, bits.Len(uint(n)))
	for start := 1; start <= n; start *= 2 {
		rows = append(rows, Row{Start: start, End: min(start*2-1, n)})
	}

	return rows
}

type Option func(r *Renderer)

// WithMaxValue makes every field at least as wide as v printed in decimal.
func WithMaxValue(v int) Option {
	return func(r *Renderer) {
		r.width = len(strconv.Itoa(v))
	}
}

func WithPadding(c rune) Option {
	return func(r *Renderer) {
		r.padding = c
	}
}

// Renderer holds formatting settings only, it keeps nothing between calls.
type Renderer struct {
	width   int
	padding rune
}

func New(opts ...Option) Renderer {
	r := Renderer{padding: ' '}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// Render writes src to w. Every element is right-aligned in a field as wide
// as the widest element (or the configured max value), and shallower rows get
// gaps that double as rows get narrower, so each parent sits over its children.
func Render[T any](r Renderer, w io.Writer, src Source[T]) error {
	n := src.Len()
	if n == 0 {
		return nil
	}

	cells := make([]string, n)
	width := r.width
	for i := range cells {
		v, _ := src.Get(i + 1)
		cells[i] = fmt.Sprint(v)
		width = max(width, utf8.RuneCountInString(cells[i]))
	}

	fill := string(r.padding)
	field := strings.Repeat(fill, width)
	largest := LargestRowSize(n)

	bw := bufio.NewWriter(w)
	for level, row := range Rows(n) {
		gap := strings.Repeat(field, largest>>level-1)
		for i := row.Start; i <= row.End; i++ {
			cell := cells[i-1]
			bw.WriteString(gap)
			bw.WriteString(strings.Repeat(fill, width-utf8.RuneCountInString(cell)))
			bw.WriteString(cell)
			if i == row.End {
				bw.WriteByte('\n')
				break
			}
			bw.WriteString(gap)
			bw.WriteString(field)
		}
	}

	if err := bw.Flush(); err != nil {
		return errgo.Wrap(err, "failed to write tree")
	}

	return nil
}

// Sprint returns what Render would write.
func Sprint[T any](r Renderer, src Source[T]) string {
	var b strings.Builder
	_ = Render(r, &b, src)

	return b.String()
}
