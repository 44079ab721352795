package helper

import (
	"fmt"
	"iter"
	"strings"
)

// Join renders every value of seq with fmt's %v verb, separated by sep.
func Join[T any](seq iter.Seq[T], sep string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
