package windows

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Section is a named group of INF lines. Lines are comment-stripped, trimmed and never empty.
type Section struct {
	Name  string
	Lines []string
}

// Document is a parsed INF file.
type Document struct {
	Sections []*Section
}

// Section returns the first section called name, ignoring case, or nil.
func (d *Document) Section(name string) *Section {
	for _, section := range d.Sections {
		if strings.EqualFold(section.Name, name) {
			return section
		}
	}

	return nil
}

// Load reads and parses the INF file at path.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to open %q: %w: %w", path, ErrIO, err)
	}

	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse %q: %w", path, err)
	}

	return doc, nil
}

// Parse parses an INF document. Input starting with a UTF-16 or UTF-8 byte
// order mark is decoded accordingly, anything else is read as is.
func Parse(r io.Reader) (*Document, error) {
	current := &Section{Name: "none"}
	doc := &Document{Sections: []*Section{current}}
	lines := 0

	scanner := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	for scanner.Scan() {
		line := trim(stripComment(scanner.Text()))

		lbracket := strings.IndexByte(line, '[')
		rbracket := strings.IndexByte(line, ']')
		if lbracket != -1 && rbracket > lbracket {
			current = &Section{Name: trim(line[lbracket+1 : rbracket])}
			doc.Sections = append(doc.Sections, current)
			continue
		}

		if line == "" {
			continue
		}

		current.Lines = append(current.Lines, line)
		lines++
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("Failed to read INF: %w: %w", ErrIO, err)
	}

	if lines == 0 {
		return nil, ErrEmptyDocument
	}

	return doc, nil
}

// parseClassGUID returns the text between the braces of a ClassGUID value, lower-cased.
func parseClassGUID(value string) string {
	start := strings.IndexByte(value, '{')
	if start == -1 {
		return ""
	}

	end := strings.IndexByte(value[start+1:], '}')
	if end == -1 {
		return strings.ToLower(value[start+1:])
	}

	return strings.ToLower(value[start+1 : start+1+end])
}
