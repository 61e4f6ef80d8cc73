package scaffold

// Kind says how a status message should be presented.
type Kind int

const (
	Info    Kind = iota // progress
	Note                // something the user has to do by hand
	Step                // an indented instruction or command
	Success             // completion
)

// Message is one line of status output. The generator returns messages in
// order instead of printing them, so callers decide where they go.
type Message struct {
	Kind Kind
	Text string
}

func info(text string) Message    { return Message{Kind: Info, Text: text} }
func note(text string) Message    { return Message{Kind: Note, Text: text} }
func step(text string) Message    { return Message{Kind: Step, Text: text} }
func success(text string) Message { return Message{Kind: Success, Text: text} }
