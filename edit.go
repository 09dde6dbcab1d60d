package rmprint

import (
	"bytes"
	"go/ast"
	"go/token"
	"sort"
	"strings"
)

// edit replaces the byte range [start, end) of the original source with text.
// A deletion has empty text, an insertion has start == end.
type edit struct {
	start int
	end   int
	text  string
}

// editBuffer collects edits against one source buffer. Offsets always refer
// to the original content no matter how many edits are queued; bytes splices
// them in a single pass. Overlapping deletions are merged.
type editBuffer struct {
	src   []byte
	edits []edit
}

func newEditBuffer(src []byte) *editBuffer {
	return &editBuffer{src: src}
}

func (b *editBuffer) delete(start, end int) {
	b.edits = append(b.edits, edit{start: start, end: end})
}

func (b *editBuffer) insert(offset int, text string) {
	b.edits = append(b.edits, edit{start: offset, end: offset, text: text})
}

func (b *editBuffer) bytes() []byte {
	sort.SliceStable(b.edits, func(i, j int) bool {
		return b.edits[i].start < b.edits[j].start
	})

	var out bytes.Buffer
	out.Grow(len(b.src))

	last := 0
	for _, e := range b.edits {
		start, end := e.start, e.end
		if start < last {
			start = last
		}
		if end < start {
			end = start
		}
		out.Write(b.src[last:start])
		out.WriteString(e.text)
		last = end
	}
	out.Write(b.src[last:])

	return out.Bytes()
}

// placement describes where a removed statement used to live, so that a
// placeholder can be put back in its stead.
type placement struct {
	offset    int    // insertion offset in the original source
	indent    string // leading whitespace of the removed line, empty for span removals
	wholeLine bool   // the statement was removed together with its line(s)
}

// sourceEditor removes statements from source text by position. It never
// reprints the syntax tree: untouched regions stay byte for byte identical.
type sourceEditor struct {
	src []byte
	tok *token.File
	buf *editBuffer
}

func newSourceEditor(fset *token.FileSet, file *ast.File, src []byte) *sourceEditor {
	return &sourceEditor{
		src: src,
		tok: fset.File(file.Pos()),
		buf: newEditBuffer(src),
	}
}

func (e *sourceEditor) offset(pos token.Pos) int {
	return e.tok.Offset(pos)
}

// lineStartOffset returns the offset of the first byte of the given line.
func (e *sourceEditor) lineStartOffset(line int) int {
	return e.offset(e.tok.LineStart(line))
}

// lineEndOffset returns the offset just past the given line, including its
// newline when the line has one.
func (e *sourceEditor) lineEndOffset(line int) int {
	if line < e.tok.LineCount() {
		return e.lineStartOffset(line + 1)
	}
	return len(e.src)
}

// ownsLines reports whether the node spanning [start, end) is the only code
// on its lines: nothing but whitespace before it and nothing but whitespace
// or a trailing line comment after it.
func (e *sourceEditor) ownsLines(start, end token.Pos) bool {
	startOff, endOff := e.offset(start), e.offset(end)
	startLine := e.tok.Line(start)
	endLine := e.tok.Line(end - 1)

	head := string(e.src[e.lineStartOffset(startLine):startOff])
	if strings.TrimLeft(head, " \t") != "" {
		return false
	}

	tail := strings.TrimSpace(string(e.src[endOff:e.lineEndOffset(endLine)]))
	return tail == "" || strings.HasPrefix(tail, "//")
}

// deleteNode removes the source range of the given node. A node that owns its
// lines disappears together with them, leaving no blank hole; otherwise only
// the node's span plus the adjacent statement separator is excised. The
// returned placement records where a replacement statement would go.
func (e *sourceEditor) deleteNode(node ast.Node) placement {
	start, end := node.Pos(), node.End()
	startOff, endOff := e.offset(start), e.offset(end)
	startLine := e.tok.Line(start)
	endLine := e.tok.Line(end - 1)

	if e.ownsLines(start, end) {
		from := e.lineStartOffset(startLine)
		e.buf.delete(from, e.lineEndOffset(endLine))
		return placement{
			offset:    from,
			indent:    string(e.src[from:startOff]),
			wholeLine: true,
		}
	}

	// The statement shares its line with other code. Consume the separating
	// semicolon as well: the one after the span when present, the one before
	// it otherwise. Scans never cross the line boundaries.
	lineEnd := e.lineEndOffset(endLine)
	j := endOff
	for j < lineEnd && (e.src[j] == ' ' || e.src[j] == '\t') {
		j++
	}
	if j < lineEnd && e.src[j] == ';' {
		endOff = j + 1
		for endOff < lineEnd && (e.src[endOff] == ' ' || e.src[endOff] == '\t') {
			endOff++
		}
	} else {
		lineStart := e.lineStartOffset(startLine)
		i := startOff - 1
		for i >= lineStart && (e.src[i] == ' ' || e.src[i] == '\t') {
			i--
		}
		if i >= lineStart && e.src[i] == ';' {
			startOff = i
		}
	}

	e.buf.delete(startOff, endOff)
	return placement{offset: startOff}
}

// insertStmt places the given statement text at a removed statement's old
// position, reproducing its indentation when the whole line was taken out.
func (e *sourceEditor) insertStmt(at placement, text string) {
	if at.wholeLine {
		e.buf.insert(at.offset, at.indent+text+"\n")
		return
	}
	e.buf.insert(at.offset, text)
}

func (e *sourceEditor) bytes() []byte {
	return e.buf.bytes()
}
