package bitmac

import "strings"

// formatWords renders a container as binary words grouped by bytes, most
// significant byte first within each word:
//
//	[0b0000_0001, 0b1000_0000]
//
// This is the debug/inspection surface; it does not depend on the bit order.
func formatWords[W Word](c Container[W]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < c.Words(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("0b")
		w := uint64(c.WordAt(i))
		for byteIdx := wordBytes[W]() - 1; byteIdx >= 0; byteIdx-- {
			if byteIdx < wordBytes[W]()-1 {
				sb.WriteByte('_')
			}
			b := uint8(w >> (byteIdx * 8))
			for bit := 7; bit >= 0; bit-- {
				if bit == 3 {
					sb.WriteByte('_')
				}
				if b&(1<<bit) != 0 {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
			}
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
