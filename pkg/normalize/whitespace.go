package normalize

// leadingSpaces counts the run of space characters at the start of line.
// Only ' ' participates; a tab terminates the run like any other byte.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// blank reports whether line consists entirely of space characters. The
// empty line is blank; a line containing a tab is not.
func blank(line string) bool {
	return leadingSpaces(line) == len(line)
}
