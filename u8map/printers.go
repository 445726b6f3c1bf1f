package u8map

import (
	"fmt"
	"strings"
)

// debug utilities

// String renders the entries in ascending key order, e.g. "u8map[1:a 5:b]".
func (m *Map[T]) String() string {
	var sb strings.Builder
	sb.WriteString("u8map[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%d:%v", k, *v)
	}
	sb.WriteByte(']')
	return sb.String()
}
