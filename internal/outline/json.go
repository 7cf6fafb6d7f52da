// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"strings"
)

// jsonParser recognizes three document shapes, in order: transcripts with a
// segments array, structured data with a title, and anything else.
type jsonParser struct{}

func (jsonParser) Outline(content, instructions string) (string, error) {
	doc, err := parseDocument(content)
	if err != nil {
		return "", formatError(err)
	}

	if segments, ok := doc.array("segments"); ok {
		text, err := transcript(segments)
		if err != nil {
			return "", formatError(err)
		}
		return renderText(text, "", instructions), nil
	}

	if title := doc.text("title"); title != "" {
		return renderStructured(title, doc.text("description"), instructions), nil
	}

	return renderText(doc.indent(), "", instructions), nil
}

// transcript joins the text of each segment with single spaces. Objects
// without a truthy text field and non-object segments contribute an empty
// string; a null segment has no fields to read and is rejected.
func transcript(segments []*value) (string, error) {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		switch seg.kind {
		case kindNull:
			return "", fmt.Errorf("segments[%d] is null", i)
		case kindObject:
			if v, ok := seg.fields["text"]; ok {
				parts[i] = v.text()
			}
		}
	}
	return strings.Join(parts, " "), nil
}
