package llm

import (
	"bufio"
	"io"
	"strings"
)

// maxEventSize bounds a single SSE line; provider deltas are tiny but error
// payloads can carry full request echoes.
const maxEventSize = 1024 * 1024

// scanEvents reads a text/event-stream body and calls fn with the payload of
// every data: line. fn returning io.EOF stops the scan without error.
func scanEvents(r io.Reader, fn func(data string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			// event:/id:/comment lines and blank separators
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}
		if err := fn(data); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
	return scanner.Err()
}
