package Trees

import (
	"errors"
	"strings"
	"testing"
)

func TestBST_Display(t *testing.T) {
	tests := []struct {
		name string
		tree *BST[int]
		want []string
	}{
		{"empty", New[int](), nil},
		{"leaf", build(7), []string{"7"}},
		{"right chain", build(1, 2), []string{
			"1 ",
			" \\",
			" 2",
		}},
		{"left chain", build(2, 1), []string{
			" 2",
			"/ ",
			"1 ",
		}},
		{"sample", build(sample...), []string{
			"  _5_  ",
			" /   \\ ",
			" 3   8 ",
			"/ \\ / \\",
			"1 4 7 9",
		}},
		{"uneven", build(10, 5, 20, 30), []string{
			" 10_   ",
			"/   \\  ",
			"5  20_ ",
			"      \\",
			"     30",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := tt.tree.Display(&sb); err != nil {
				t.Fatal(err)
			}
			want := ""
			if tt.want != nil {
				want = strings.Join(tt.want, "\n") + "\n"
			}
			if sb.String() != want {
				t.Errorf("got\n%s\nwant\n%s", sb.String(), want)
			}
			if tt.tree.String() != want {
				t.Errorf("String differs from Display")
			}
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestBST_DisplayError(t *testing.T) {
	if err := build(sample...).Display(failWriter{}); err == nil {
		t.Errorf("write error was dropped")
	}
}
