package runbook

import (
	"strings"

	"github.com/runbookops/runbook-guard/pkg/logger"
)

var docLog = logger.New("runbook:docheader")

const (
	helpOpenDelimiter  = "<#"
	helpCloseDelimiter = "#>"
)

// HelpHeader is the parsed comment-based help block of a runbook. Parameter
// documentation preserves declaration order; lookups are case-insensitive.
type HelpHeader struct {
	Synopsis    HelpText
	Description HelpText
	Parameters  []DocParameter
}

// DocParameter is one .PARAMETER section: a name and its description.
type DocParameter struct {
	Name        string
	Description HelpText
}

// ParameterDoc returns the documentation for a parameter name, matched
// case-insensitively.
func (h *HelpHeader) ParameterDoc(name string) (HelpText, bool) {
	for _, p := range h.Parameters {
		if strings.EqualFold(p.Name, name) {
			return p.Description, true
		}
	}
	return HelpText{}, false
}

// ParseHelpHeader extracts the leading comment-based help block from raw
// runbook source. The block must be the first non-whitespace content of the
// file; blank lines before it are tolerated, anything else is not. A
// structurally malformed block (missing delimiters) is a failure here;
// judging the content is the completeness check's job.
func ParseHelpHeader(source string) (*HelpHeader, *Failure) {
	// UTF-8 byte-order marker, common in PowerShell files saved on Windows.
	source = strings.TrimPrefix(source, "\uFEFF")

	trimmed := strings.TrimLeft(source, " \t\r\n")
	if trimmed == "" {
		return nil, Failf("file is empty")
	}
	if !strings.HasPrefix(trimmed, helpOpenDelimiter) {
		return nil, Failf("missing comment-based help header: the file must start with a '%s' help block", helpOpenDelimiter)
	}

	body := trimmed[len(helpOpenDelimiter):]
	end := strings.Index(body, helpCloseDelimiter)
	if end < 0 {
		return nil, Failf("comment-based help block is not closed: no matching '%s' found", helpCloseDelimiter)
	}

	header := parseHelpSections(body[:end])
	docLog.Printf("Parsed help header: synopsis_len=%d, description_len=%d, parameters=%d",
		len(header.Synopsis.Flatten()), len(header.Description.Flatten()), len(header.Parameters))
	return header, nil
}

// parseHelpSections splits the help block body into dot-keyword sections.
// Keywords are matched case-insensitively; unrecognized keywords (.EXAMPLE,
// .NOTES, ...) terminate the current section and are otherwise skipped.
func parseHelpSections(body string) *HelpHeader {
	header := &HelpHeader{}

	var (
		collect   func(HelpText)
		collected []string
	)
	flush := func() {
		if collect != nil {
			collect(StructuredText(collected))
		}
		collect = nil
		collected = nil
	}

	for _, line := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(line)

		keyword, arg, isKeyword := parseDotKeyword(stripped)
		if !isKeyword {
			if collect != nil {
				collected = append(collected, line)
			}
			continue
		}

		flush()
		switch keyword {
		case "SYNOPSIS":
			collect = func(t HelpText) { header.Synopsis = t }
		case "DESCRIPTION":
			collect = func(t HelpText) { header.Description = t }
		case "PARAMETER":
			if arg == "" {
				// A .PARAMETER line with no name documents nothing.
				continue
			}
			name := arg
			collect = func(t HelpText) {
				header.Parameters = append(header.Parameters, DocParameter{Name: name, Description: t})
			}
		}
	}
	flush()

	return header
}

// parseDotKeyword recognizes lines of the form ".KEYWORD" or
// ".KEYWORD argument". The keyword is returned upper-cased.
func parseDotKeyword(line string) (keyword, arg string, ok bool) {
	if !strings.HasPrefix(line, ".") {
		return "", "", false
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return "", "", false
	}
	keyword = strings.ToUpper(fields[0])
	switch keyword {
	case "SYNOPSIS", "DESCRIPTION", "PARAMETER", "EXAMPLE", "NOTES", "INPUTS", "OUTPUTS", "LINK", "COMPONENT", "ROLE", "FUNCTIONALITY":
		if len(fields) > 1 {
			arg = fields[1]
		}
		return keyword, arg, true
	}
	return "", "", false
}
