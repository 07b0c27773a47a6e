package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{name: "command only", line: "hello", wantCmd: "hello"},
		{name: "command with args", line: "add John 1234567890", wantCmd: "add", wantArgs: []string{"John", "1234567890"}},
		{name: "uppercase command", line: "ADD John 1234567890", wantCmd: "add", wantArgs: []string{"John", "1234567890"}},
		{name: "extra whitespace", line: "  phone   John  ", wantCmd: "phone", wantArgs: []string{"John"}},
		{name: "args keep case", line: "add JOHN 1234567890", wantCmd: "add", wantArgs: []string{"JOHN", "1234567890"}},
		{name: "empty line", line: "", wantCmd: ""},
		{name: "whitespace only", line: "   \t  ", wantCmd: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.line)
			if cmd != tt.wantCmd {
				t.Errorf("Parse(%q) cmd = %q, want %q", tt.line, cmd, tt.wantCmd)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("Parse(%q) args = %v, want %v", tt.line, args, tt.wantArgs)
			}
			for i, want := range tt.wantArgs {
				if args[i] != want {
					t.Errorf("Parse(%q) args[%d] = %q, want %q", tt.line, i, args[i], want)
				}
			}
		})
	}
}
