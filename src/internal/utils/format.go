package utils

import "strconv"

// FormatThousands formats n with comma thousand separators (12345 -> "12,345").
func FormatThousands(n int) string {
	s := strconv.Itoa(n)

	start := 0
	if n < 0 {
		start = 1
	}

	digits := len(s) - start
	if digits <= 3 {
		return s
	}

	var out []byte
	out = append(out, s[:start]...)
	for i := start; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
