package cli

import (
	"strconv"
	"strings"
)

// multiValueFlags lists options that take several space-separated values.
var multiValueFlags = map[string]int{
	"--resize": 2,
	"--crop":   4,
}

// normalizeArgs rewrites "--resize 200 150" into "--resize=200,150" so the
// space-separated form and the comma form parse the same way.
//
// Rewriting happens only when the option is followed by enough integers;
// otherwise the arguments are left alone for flag parsing to report.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		n, ok := multiValueFlags[arg]
		if !ok || !enoughValues(args[i+1:], n) {
			out = append(out, arg)
			continue
		}

		out = append(out, arg+"="+strings.Join(args[i+1:i+1+n], ","))
		i += n
	}
	return out
}

func enoughValues(rest []string, n int) bool {
	if len(rest) < n {
		return false
	}
	for _, v := range rest[:n] {
		if _, err := strconv.Atoi(v); err != nil {
			return false
		}
	}
	return true
}
