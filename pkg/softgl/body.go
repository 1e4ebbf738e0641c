package softgl

import "strings"

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokPunct
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	line int
}

const punctuation = "(){}[];,.+-*/=<>!&|^%?:~"

var builtinNames = map[string]bool{
	"gl_Position": true, "gl_PointSize": true, "gl_FragColor": true,
	"gl_FragCoord": true, "gl_FrontFacing": true, "gl_PointCoord": true,
	"gl_VertexID": true, "gl_InstanceID": true,

	"radians": true, "degrees": true, "sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true, "pow": true, "exp": true,
	"log": true, "exp2": true, "log2": true, "sqrt": true, "inversesqrt": true,
	"abs": true, "sign": true, "floor": true, "ceil": true, "fract": true,
	"mod": true, "min": true, "max": true, "clamp": true, "mix": true,
	"step": true, "smoothstep": true, "length": true, "distance": true,
	"dot": true, "cross": true, "normalize": true, "reflect": true,
	"refract": true, "texture": true, "texture2D": true,
}

var keywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"return": true, "break": true, "continue": true, "discard": true,
	"true": true, "false": true, "const": true, "in": true, "out": true,
	"inout": true, "lowp": true, "mediump": true, "highp": true,
	"void": true, "struct": true, "precision": true,
}

// Words that may be directly followed by another word or number.
var prefixWords = map[string]bool{
	"const": true, "in": true, "out": true, "inout": true,
	"lowp": true, "mediump": true, "highp": true,
	"return": true, "else": true, "void": true,
}

var controlWords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
}

// scanTokens splits comment-free, directive-free source into tokens.
func scanTokens(text string) []token {
	var toks []token
	line := 1
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case isIdentStart(c):
			j := i + 1
			for j < len(text) && (isIdentStart(text[j]) || isDigit(text[j])) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: text[i:j], line: line})
			i = j
		case isDigit(c) || c == '.' && i+1 < len(text) && isDigit(text[i+1]):
			j := scanNumber(text, i)
			toks = append(toks, token{kind: tokNumber, text: text[i:j], line: line})
			i = j
		case strings.IndexByte(punctuation, c) >= 0:
			toks = append(toks, token{kind: tokPunct, text: text[i : i+1], line: line})
			i++
		default:
			toks = append(toks, token{kind: tokInvalid, text: text[i : i+1], line: line})
			i++
		}
	}
	return toks
}

func scanNumber(text string, i int) int {
	digits := func(i int) int {
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		return i
	}
	i = digits(i)
	if i < len(text) && text[i] == '.' {
		i = digits(i + 1)
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && isDigit(text[j]) {
			i = digits(j)
		}
	}
	if i < len(text) && strings.IndexByte("fFuU", text[i]) >= 0 {
		i++
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// checkBodies checks the statements of every function definition. globals
// holds the names declared at file scope.
func checkBodies(toks []token, globals map[string]bool, log *logWriter) {
	scope := make(map[string]bool, len(globals))
	for name := range globals {
		scope[name] = true
	}
	start := 0
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case ";":
			start = i + 1
		case "{":
			end := matchingBrace(toks, i)
			header := toks[start:i]
			locals := make(map[string]bool, len(scope))
			for name := range scope {
				locals[name] = true
			}
			for j := 1; j < len(header); j++ {
				prev := header[j-1]
				switch {
				case header[j].text == "(" && prev.kind == tokIdent:
					scope[prev.text] = true
					locals[prev.text] = true
				case header[j].kind == tokIdent && knownTypes[prev.text]:
					locals[header[j].text] = true
				}
			}
			closeLine := t.line
			if end < len(toks) {
				closeLine = toks[end].line
			} else if len(toks) > 0 {
				closeLine = toks[len(toks)-1].line
			}
			checkBlock(toks[i+1:end], locals, closeLine, log)
			i = end
			start = end + 1
		}
	}
}

func matchingBrace(toks []token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		if toks[i].kind != tokPunct {
			continue
		}
		switch toks[i].text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(toks)
}

func checkBlock(body []token, scope map[string]bool, closeLine int, log *logWriter) {
	stmt := 0
	parens := 0
	for j, t := range body {
		switch t.kind {
		case tokInvalid:
			log.errorf(t.line, "'%s' : syntax error", t.text)
			continue
		case tokPunct:
			switch t.text {
			case "(":
				parens++
			case ")":
				parens--
			case ";":
				if parens <= 0 {
					stmt = j + 1
				}
			case "{":
				if j > stmt && !controlWords[body[stmt].text] {
					log.errorf(t.line, "'{' : syntax error")
				}
				stmt, parens = j+1, 0
			case "}":
				if j > stmt {
					log.errorf(t.line, "'}' : syntax error")
				}
				stmt, parens = j+1, 0
			}
			continue
		}

		var prev *token
		if j > 0 {
			prev = &body[j-1]
		}
		if prev != nil && (prev.kind == tokIdent || prev.kind == tokNumber) &&
			!knownTypes[prev.text] && !prefixWords[prev.text] {
			log.errorf(t.line, "'%s' : syntax error", t.text)
			continue
		}
		if t.kind != tokIdent {
			continue
		}
		switch {
		case prev != nil && prev.kind == tokPunct && prev.text == ".":
			// field or swizzle
		case prev != nil && knownTypes[prev.text]:
			scope[t.text] = true
		case !scope[t.text] && !builtinNames[t.text] && !knownTypes[t.text] && !keywords[t.text]:
			log.errorf(t.line, "'%s' : undeclared identifier", t.text)
		}
	}
	if stmt < len(body) {
		log.errorf(closeLine, "'}' : syntax error")
	}
}
