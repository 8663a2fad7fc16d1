package Trees

import (
	"fmt"
	"io"
	"strings"
)

// block is a rendered subtree: lines all of the same width, and mid, the column
// under which the subtree's root label is centered.
type block struct {
	lines []string
	width int
	mid   int
}

func pad(c byte, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(c), n)
}

// layout renders the subtree rooting at cur, which mustn't be nil. Recursive.
// Children hang below their parent's label, joined by "_" runs and "/" or "\".
func layout[T any](cur *node[T]) block {
	s := fmt.Sprint(cur.v)
	u := len(s)
	switch {
	case cur.l == nil && cur.r == nil:
		return block{[]string{s}, u, u / 2}
	case cur.r == nil:
		b := layout(cur.l)
		n, x := b.width, b.mid
		lines := make([]string, 0, len(b.lines)+2)
		lines = append(lines,
			pad(' ', x+1)+pad('_', n-x-1)+s,
			pad(' ', x)+"/"+pad(' ', n-x-1+u))
		for _, l := range b.lines {
			lines = append(lines, l+pad(' ', u))
		}
		return block{lines, n + u, n + u/2}
	case cur.l == nil:
		b := layout(cur.r)
		n, x := b.width, b.mid
		lines := make([]string, 0, len(b.lines)+2)
		lines = append(lines,
			s+pad('_', x)+pad(' ', n-x),
			pad(' ', u+x)+"\\"+pad(' ', n-x-1))
		for _, l := range b.lines {
			lines = append(lines, pad(' ', u)+l)
		}
		return block{lines, n + u, u / 2}
	default:
		lb, rb := layout(cur.l), layout(cur.r)
		n, x, m, y := lb.width, lb.mid, rb.width, rb.mid
		for len(lb.lines) < len(rb.lines) {
			lb.lines = append(lb.lines, pad(' ', n))
		}
		for len(rb.lines) < len(lb.lines) {
			rb.lines = append(rb.lines, pad(' ', m))
		}
		lines := make([]string, 0, len(lb.lines)+2)
		lines = append(lines,
			pad(' ', x+1)+pad('_', n-x-1)+s+pad('_', y)+pad(' ', m-y),
			pad(' ', x)+"/"+pad(' ', n-x-1+u+y)+"\\"+pad(' ', m-y-1))
		for i := range lb.lines {
			lines = append(lines, lb.lines[i]+pad(' ', u)+rb.lines[i])
		}
		return block{lines, n + m + u, n + u/2}
	}
}

// Display writes an ASCII diagram of the tree to w, one line per row of text.
// Nothing is written for an empty tree. Recursive.
func (u *BST[T]) Display(w io.Writer) error {
	if u.root == nil {
		return nil
	}
	for _, l := range layout(u.root).lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// String is the Display diagram.
func (u *BST[T]) String() string {
	var sb strings.Builder
	u.Display(&sb)
	return sb.String()
}
