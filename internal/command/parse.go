package command

import "strings"

// Parse splits a raw input line into a command keyword and its positional
// arguments. The keyword is lowercased; an empty or all-whitespace line
// yields an empty keyword, which dispatches as an invalid command.
func Parse(line string) (cmd string, args []string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return strings.ToLower(tokens[0]), tokens[1:]
}
