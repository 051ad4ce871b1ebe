package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"powersched/internal/requests"
)

// FormatError reports a malformed feed line. The offending text is kept
// so the caller can echo it back.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Read parses the textual feed: a count line, then count rows of
// "AT BT PR PH" whitespace-separated integers. It stops on the first
// malformed line; range validation of the values happens later in the
// registry.
func Read(r io.Reader) (*requests.ScheduleRequests, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	countText, err := nextLine(scanner, &line)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(countText)
	if err != nil {
		return nil, &FormatError{Line: line, Text: countText, Reason: "process count must be an integer"}
	}
	if count < 0 {
		return nil, &FormatError{Line: line, Text: countText, Reason: "process count must not be negative"}
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, count)}
	for i := 0; i < count; i++ {
		text, err := nextLine(scanner, &line)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, &FormatError{Line: line, Text: text, Reason: "expected 4 fields: AT BT PR PH"}
		}
		values := make([]int, 4)
		for j, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, &FormatError{Line: line, Text: text, Reason: fmt.Sprintf("token %q is not an integer", field)}
			}
			values[j] = v
		}
		request.Jobs = append(request.Jobs, requests.Job{
			ArrivalTime: values[0],
			BurstTime:   values[1],
			Priority:    values[2],
			PowerHint:   values[3],
		})
	}

	return request, nil
}

// nextLine returns the next non-blank line, trimmed.
func nextLine(scanner *bufio.Scanner, line *int) (string, error) {
	for scanner.Scan() {
		*line++
		text := strings.TrimSpace(scanner.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", &FormatError{Line: *line, Reason: "unexpected end of input"}
}
