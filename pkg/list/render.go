package list

import (
	"strconv"
	"strings"
)

const separator = ", "

// Render joins the values head to tail, each followed by ", ", so
// a list of 10, 11, 12 renders as "10, 11, 12, ". An empty list renders as "".
func Render(l *List) string {
	var b strings.Builder
	for n := l.Head(); n != nil; n = n.tail {
		b.WriteString(strconv.Itoa(n.value))
		b.WriteString(separator)
	}
	return b.String()
}
