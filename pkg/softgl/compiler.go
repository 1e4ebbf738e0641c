package softgl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kjkrol/tricolor/pkg/shader"
)

type declaration struct {
	qualifier string
	typ       string
	name      string
}

type compiled struct {
	version  string
	inputs   []declaration
	outputs  []declaration
	uniforms []declaration
}

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	versionLine  = regexp.MustCompile(`^\s*#version\s+(\d+)(?:\s+(\w+))?\s*$`)
	mainFunc     = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(?:void)?\s*\)\s*\{`)
	declLine     = regexp.MustCompile(`^\s*(?:layout\s*\([^)]*\)\s*)?(attribute|varying|uniform|in|out)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*;\s*$`)
	precLine     = regexp.MustCompile(`^\s*precision\s+(lowp|mediump|highp)\s+(float|int)\s*;\s*$`)
)

var knownTypes = map[string]bool{
	"float": true, "int": true, "bool": true,
	"vec2": true, "vec3": true, "vec4": true,
	"mat2": true, "mat3": true, "mat4": true,
	"sampler2D": true,
}

// supportedVersions lists the #version numbers each dialect accepts.
var supportedVersions = map[shader.Dialect][]string{
	shader.GLSLES100: {"100"},
	shader.GLSL330:   {"140", "150", "330"},
}

// implicitVersion applies when a source has no #version line.
func implicitVersion(d shader.Dialect) string {
	if d == shader.GLSL330 {
		return "110"
	}
	return "100"
}

// compileSource checks a stage against the dialect of the context and
// collects its interface. It is not a GLSL compiler: declarations and
// statements are checked, expressions only for unknown characters,
// undeclared identifiers and missing operators.
func compileSource(dialect shader.Dialect, stage shader.Stage, source string) (*compiled, string) {
	text := blockComment.ReplaceAllStringFunc(source, func(s string) string {
		return strings.Repeat("\n", strings.Count(s, "\n"))
	})
	text = lineComment.ReplaceAllString(text, "")

	out := &compiled{version: implicitVersion(dialect)}
	versionAt := 0
	var log logWriter

	if line, err := checkBalanced(text); err != "" {
		log.errorf(line, "%s", err)
	}

	lines := strings.Split(text, "\n")
	depth := 0
	seenCode := false
	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			m := versionLine.FindStringSubmatch(trimmed)
			switch {
			case m == nil:
				log.errorf(lineNo, "unsupported preprocessor directive %q", trimmed)
			case seenCode:
				log.errorf(lineNo, "#version must occur before anything else")
			default:
				out.version = strings.TrimSpace(m[1] + " " + m[2])
				versionAt = lineNo
			}
			lines[i] = ""
			seenCode = true
			continue
		}
		seenCode = true
		if depth == 0 {
			if m := declLine.FindStringSubmatch(trimmed); m != nil {
				d := declaration{qualifier: m[1], typ: m[2], name: m[3]}
				if !knownTypes[d.typ] {
					log.errorf(lineNo, "'%s' : syntax error", d.typ)
				} else if msg := checkQualifier(stage, out.version, d.qualifier); msg != "" {
					log.errorf(lineNo, "'%s' : %s", d.qualifier, msg)
				} else {
					out.add(stage, d)
				}
			} else if !precLine.MatchString(trimmed) && !strings.HasPrefix(trimmed, "void") && !strings.HasPrefix(trimmed, "{") {
				log.errorf(lineNo, "'%s' : syntax error", firstToken(trimmed))
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}

	if msg := checkVersion(dialect, out.version); msg != "" {
		log.errorf(versionAt, "%s", msg)
	}

	globals := make(map[string]bool)
	for _, group := range [][]declaration{out.inputs, out.outputs, out.uniforms} {
		for _, d := range group {
			globals[d.name] = true
		}
	}
	checkBodies(scanTokens(strings.Join(lines, "\n")), globals, &log)

	if !mainFunc.MatchString(text) {
		log.errorf(0, "missing main function")
	}
	switch stage {
	case shader.StageVertex:
		if !strings.Contains(text, "gl_Position") {
			log.errorf(0, "vertex stage never writes gl_Position")
		}
	case shader.StageFragment:
		if !strings.Contains(text, "gl_FragColor") && len(out.outputs) == 0 {
			log.errorf(0, "fragment stage has no color output")
		}
	}

	if log.Len() > 0 {
		return nil, log.String()
	}
	return out, ""
}

func (c *compiled) add(stage shader.Stage, d declaration) {
	switch d.qualifier {
	case "uniform":
		c.uniforms = append(c.uniforms, d)
	case "attribute":
		c.inputs = append(c.inputs, d)
	case "in":
		c.inputs = append(c.inputs, d)
	case "out":
		c.outputs = append(c.outputs, d)
	case "varying":
		if stage == shader.StageVertex {
			c.outputs = append(c.outputs, d)
		} else {
			c.inputs = append(c.inputs, d)
		}
	}
}

func checkVersion(dialect shader.Dialect, version string) string {
	number, profile, _ := strings.Cut(version, " ")
	for _, v := range supportedVersions[dialect] {
		if v != number {
			continue
		}
		if profile != "" && (dialect != shader.GLSL330 || profile != "core") {
			return fmt.Sprintf("'%s' : unsupported profile", profile)
		}
		return ""
	}
	return fmt.Sprintf("version '%s' is not supported by this context", number)
}

// legacyVersion reports versions before GLSL 1.30, which use attribute and
// varying instead of in and out.
func legacyVersion(version string) bool {
	number, _, _ := strings.Cut(version, " ")
	n, err := strconv.Atoi(number)
	return err == nil && n < 130
}

func checkQualifier(stage shader.Stage, version, qualifier string) string {
	legacy := legacyVersion(version)
	switch qualifier {
	case "attribute":
		if !legacy {
			return "attribute is not supported in this version"
		}
		if stage != shader.StageVertex {
			return "attribute is only valid in the vertex stage"
		}
	case "varying":
		if !legacy {
			return "varying is not supported in this version"
		}
	case "in", "out":
		if legacy {
			return "storage qualifier requires #version 300 or later"
		}
	}
	return ""
}

// checkBalanced returns the line and message of the first delimiter that
// is closed out of order, or of the innermost one left open.
func checkBalanced(text string) (int, string) {
	type opener struct {
		r    rune
		line int
	}
	pairs := map[rune]rune{')': '(', '}': '{', ']': '['}
	var stack []opener
	line := 1
	for _, r := range text {
		switch r {
		case '\n':
			line++
		case '(', '{', '[':
			stack = append(stack, opener{r: r, line: line})
		case ')', '}', ']':
			if len(stack) == 0 || stack[len(stack)-1].r != pairs[r] {
				return line, fmt.Sprintf("'%c' : syntax error", r)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return top.line, fmt.Sprintf("'%c' : syntax error", top.r)
	}
	return 0, ""
}

func firstToken(s string) string {
	if i := strings.IndexAny(s, " \t(;"); i > 0 {
		return s[:i]
	}
	return s
}

type logWriter struct {
	strings.Builder
}

func (w *logWriter) errorf(line int, format string, args ...any) {
	fmt.Fprintf(w, "ERROR: 0:%d: ", line)
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}
