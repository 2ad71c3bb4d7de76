package structure

import "github.com/poiesic/docrank/core"

// cursorState tracks whether the assembler currently has a section
// open to receive content.
type cursorState int

const (
	noOpenSection cursorState = iota
	openSection
)

// sectionCursor is the assembly state machine. Exactly one section is
// open at a time; a new section header closes the previous section
// before opening its own.
type sectionCursor struct {
	state    cursorState
	current  core.Section
	sections []core.Section
}

// open closes any open section and starts a new one for the given
// header detection.
func (c *sectionCursor) open(title string, page int, confidence float64, bbox core.BoundingBox) {
	c.close()
	c.current = core.Section{
		Title:      title,
		Page:       page,
		Confidence: confidence,
		BBox:       bbox,
	}
	c.state = openSection
}

// appendContent adds a content element to the open section. Content
// seen while no section is open is dropped.
func (c *sectionCursor) appendContent(el core.Element) {
	if c.state != openSection {
		return
	}
	el.SectionTitle = c.current.Title
	c.current.Content = append(c.current.Content, el)
	c.current.WordCount += countWords(el.Text)
}

// close finalizes the open section, if any. Sections are appended
// unconditionally; retention filtering happens in post-processing.
func (c *sectionCursor) close() {
	if c.state != openSection {
		return
	}
	c.sections = append(c.sections, c.current)
	c.current = core.Section{}
	c.state = noOpenSection
}
