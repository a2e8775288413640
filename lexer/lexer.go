// Package lexer implements spec §4.3's tokenizer: a single left-to-right
// pass over the preprocessed expression, followed by three normalization
// passes over the resulting token stream.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/registry"
	"github.com/evallang/numexpr/token"
)

// Tokenize turns expr (already run through preprocess.Expand) into a
// normalized token stream. It panics with a *numerr.Error on any lexical
// failure, following the rest of the pipeline's panic/recover discipline;
// the top-level Evaluate recovers it.
func Tokenize(expr string, reg *registry.Registry) []token.Token {
	toks := scan(expr, reg)
	toks = splitSignedNumbersAfterParen(toks)
	toks = insertImplicitMultiplication(toks)
	toks = mergeConsecutiveSigns(toks, reg)
	return toks
}

func scan(expr string, reg *registry.Registry) []token.Token {
	var toks []token.Token
	n := len(expr)
	maxLen := reg.MaxTokenLength()
	barOpen := true

	i := 0
	for i < n {
		r, size := utf8.DecodeRuneInString(expr[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		// a. three-argument function match.
		if sym, argStart, closeIdx, ok := matchThreeArg(expr, i, reg); ok {
			toks = appendThreeArg(toks, sym, expr, argStart, closeIdx, i)
			i = closeIdx + 1
			continue
		}

		// b. signed number start.
		if isNumberStart(r, toks, reg, expr, i, size) {
			tok, next := lexNumber(expr, i)
			toks = append(toks, tok)
			i = next
			continue
		}

		// c. parenthesis / separator.
		switch r {
		case '(':
			toks = append(toks, token.New(token.LeftParen, "(", i))
			i += size
			continue
		case ')':
			toks = append(toks, token.New(token.RightParen, ")", i))
			i += size
			continue
		case ';':
			toks = append(toks, token.New(token.Semicolon, ";", i))
			i += size
			continue
		}

		// d. absolute-value bar safety net; normally preprocess.Expand has
		// already rewritten every '|' into abs(...).
		if r == '|' {
			if barOpen {
				toks = append(toks, token.New(token.Function, "abs", i), token.New(token.LeftParen, "(", i))
			} else {
				toks = append(toks, token.New(token.RightParen, ")", i))
			}
			barOpen = !barOpen
			i += size
			continue
		}

		// e. maximal-munch operator/function/constant.
		if sym, elem, length, ok := matchMaxMunch(expr, i, maxLen, reg); ok {
			toks = appendElementToken(toks, sym, elem, i)
			i += length
			continue
		}

		// f. variable: maximal run of letters.
		if unicode.IsLetter(r) {
			j := i
			for j < n {
				rr, sz := utf8.DecodeRuneInString(expr[j:])
				if !unicode.IsLetter(rr) {
					break
				}
				j += sz
			}
			toks = append(toks, token.New(token.Variable, expr[i:j], i))
			i = j
			continue
		}

		// g. nothing matched.
		numerr.Raise(numerr.Syntax, i, "unexpected character %q", r)
	}
	return toks
}

// isNumberStart decides whether the rune at expr[i] begins a NUMBER
// literal, per spec §4.3's signed-number-start decision table. A bare
// digit or '.' always starts a number; a '+'/'-' starts one only when the
// previous token indicates a sign position AND a digit or '.' actually
// follows, so a lone sign with no trailing digit falls through to be
// tokenized as an operator instead (see mergeConsecutiveSigns).
func isNumberStart(r rune, toks []token.Token, reg *registry.Registry, expr string, i, size int) bool {
	if unicode.IsDigit(r) || r == '.' {
		return true
	}
	if r != '+' && r != '-' {
		return false
	}
	if !signBelongsToNumber(toks, reg, r) {
		return false
	}
	return nextIsDigitOrDot(expr, i+size)
}

func nextIsDigitOrDot(expr string, pos int) bool {
	if pos >= len(expr) {
		return false
	}
	return isASCIIDigit(expr[pos]) || expr[pos] == '.'
}

// signBelongsToNumber implements the decision table's "previous token
// type" column.
func signBelongsToNumber(toks []token.Token, reg *registry.Registry, c rune) bool {
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	switch last.Kind {
	case token.Number, token.RightParen, token.Constant, token.Variable:
		return false
	case token.LeftParen:
		return c == '-'
	case token.Function, token.Semicolon:
		return true
	case token.Operator:
		if isPostfixOperator(last.Lexeme, reg) {
			return false
		}
		return true
	default:
		return true
	}
}

func isPostfixOperator(sym string, reg *registry.Registry) bool {
	e, ok := reg.Find(sym)
	if !ok {
		return false
	}
	_, isPostfix := e.(registry.PostfixUnaryOperator)
	return isPostfix
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// lexNumber consumes an optional single sign followed by digits and an
// optional decimal fraction, normalizing a leading '+' away.
func lexNumber(expr string, i int) (token.Token, int) {
	start := i
	n := len(expr)
	sign := ""
	if expr[i] == '+' || expr[i] == '-' {
		if expr[i] == '-' {
			sign = "-"
		}
		i++
	}
	digitsStart := i
	for i < n && isASCIIDigit(expr[i]) {
		i++
	}
	if i < n && expr[i] == '.' {
		i++
		for i < n && isASCIIDigit(expr[i]) {
			i++
		}
	}
	return token.New(token.Number, sign+expr[digitsStart:i], start), i
}

// matchThreeArg looks for a registered three-argument function symbol at
// i, immediately followed by '(', and returns the span of its argument
// list (the bytes strictly between the parens).
func matchThreeArg(expr string, i int, reg *registry.Registry) (sym string, argStart, closeIdx int, ok bool) {
	n := len(expr)
	for _, cand := range reg.ThreeArgumentCandidates() {
		l := len(cand)
		if i+l > n || expr[i:i+l] != cand {
			continue
		}
		j := i + l
		if j >= n || expr[j] != '(' {
			continue
		}
		depth := 1
		k := j + 1
		for k < n && depth > 0 {
			switch expr[k] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				break
			}
			k++
		}
		if depth != 0 {
			numerr.Raise(numerr.MismatchedParens, i, "unterminated three-argument function %q", cand)
		}
		return cand, j + 1, k, true
	}
	return "", 0, 0, false
}

func appendThreeArg(toks []token.Token, sym, expr string, argStart, closeIdx, pos int) []token.Token {
	inside := expr[argStart:closeIdx]
	parts := strings.Split(inside, ";")
	if len(parts) != 3 {
		numerr.Raise(numerr.Malformed, pos, "%q expects exactly 3 arguments separated by ';', got %d", sym, len(parts))
	}
	p1 := strings.TrimSpace(parts[0])
	p2 := strings.TrimSpace(parts[1])
	p3 := strings.TrimSpace(parts[2])
	return append(toks,
		token.New(token.Number, p1, argStart),
		token.New(token.Number, p2, argStart),
		token.New(token.String, p3, argStart),
		token.New(token.Function, sym, pos),
	)
}

// matchMaxMunch tries the longest registered symbol first, down to one
// byte, per spec §4.3 step e.
func matchMaxMunch(expr string, i, maxLen int, reg *registry.Registry) (string, registry.Element, int, bool) {
	n := len(expr)
	upper := maxLen
	if i+upper > n {
		upper = n - i
	}
	for l := upper; l >= 1; l-- {
		cand := expr[i : i+l]
		if e, ok := reg.Find(cand); ok {
			return cand, e, l, true
		}
	}
	return "", nil, 0, false
}

func appendElementToken(toks []token.Token, sym string, elem registry.Element, pos int) []token.Token {
	switch e := elem.(type) {
	case registry.Constant:
		return append(toks, token.New(token.Constant, sym, pos))
	case registry.PostfixUnaryOperator:
		validateFactorialPosition(toks, pos)
		return append(toks, token.New(token.Operator, sym, pos))
	case registry.BinaryOperator, registry.PrefixUnaryOperator:
		return append(toks, token.New(token.Operator, sym, pos))
	case registry.Function, registry.ThreeArgumentFunction:
		return append(toks, token.New(token.Function, sym, pos))
	case registry.Parenthesis:
		if e.Side == registry.Open {
			return append(toks, token.New(token.LeftParen, sym, pos))
		}
		return append(toks, token.New(token.RightParen, sym, pos))
	case registry.Separator:
		return append(toks, token.New(token.Semicolon, sym, pos))
	default:
		numerr.Raise(numerr.Syntax, pos, "unrecognized registry element %q", sym)
		return toks
	}
}

// validateFactorialPosition enforces that a postfix unary operator may
// only follow a NUMBER, RIGHT_PAREN, VARIABLE, or CONSTANT.
func validateFactorialPosition(toks []token.Token, pos int) {
	if len(toks) == 0 {
		numerr.Raise(numerr.Syntax, pos, "operator cannot appear at the start of an expression")
	}
	switch toks[len(toks)-1].Kind {
	case token.Number, token.RightParen, token.Variable, token.Constant:
		return
	default:
		numerr.Raise(numerr.Syntax, pos, "operator must follow a number, variable, constant, or ')'")
	}
}

// splitSignedNumbersAfterParen implements normalization step 1: a
// RIGHT_PAREN immediately followed by a signed NUMBER is split into a
// standalone sign OPERATOR and the unsigned NUMBER.
func splitSignedNumbersAfterParen(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for idx, t := range toks {
		if idx > 0 && toks[idx-1].Kind == token.RightParen && t.Kind == token.Number &&
			len(t.Lexeme) > 1 && (t.Lexeme[0] == '+' || t.Lexeme[0] == '-') {
			out = append(out, token.New(token.Operator, t.Lexeme[:1], t.Pos))
			out = append(out, token.New(token.Number, t.Lexeme[1:], t.Pos+1))
			continue
		}
		out = append(out, t)
	}
	return out
}

// insertImplicitMultiplication implements normalization step 2, the
// juxtaposition table from spec §4.3.
func insertImplicitMultiplication(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for idx, t := range toks {
		out = append(out, t)
		if idx == len(toks)-1 {
			continue
		}
		next := toks[idx+1]
		if impliesProduct(t, next) {
			out = append(out, token.New(token.Operator, "*", next.Pos))
		}
	}
	return out
}

func impliesProduct(cur, next token.Token) bool {
	switch cur.Kind {
	case token.Number:
		switch next.Kind {
		case token.LeftParen, token.Function, token.Variable, token.Constant:
			return true
		}
	case token.RightParen:
		switch next.Kind {
		case token.Number, token.Function, token.LeftParen, token.Variable, token.Constant:
			return true
		}
	case token.Variable, token.Constant:
		switch next.Kind {
		case token.Number, token.Variable, token.Constant, token.LeftParen, token.Function:
			return true
		}
	}
	return false
}

// mergeConsecutiveSigns implements normalization step 3: a run of
// consecutive sign OPERATOR tokens collapses to a single '+' (even count
// of '-') or '-' (odd count). A run standing where the decision table puts
// a number's sign, directly before a NUMBER, is folded into that number
// instead, so "--5" becomes the single NUMBER 5.
func mergeConsecutiveSigns(toks []token.Token, reg *registry.Registry) []token.Token {
	out := make([]token.Token, 0, len(toks))
	i := 0
	for i < len(toks) {
		t := toks[i]
		if !t.IsSign() {
			out = append(out, t)
			i++
			continue
		}
		negCount := 0
		pos := t.Pos
		j := i
		for j < len(toks) && toks[j].IsSign() {
			if toks[j].Lexeme == "-" {
				negCount++
			}
			j++
		}
		sym := "+"
		if negCount%2 == 1 {
			sym = "-"
		}
		if j < len(toks) && toks[j].Kind == token.Number && signBelongsToNumber(out, reg, rune(sym[0])) {
			lexeme := strings.TrimPrefix(toks[j].Lexeme, "-")
			if (sym == "-") != strings.HasPrefix(toks[j].Lexeme, "-") {
				lexeme = "-" + lexeme
			}
			out = append(out, token.New(token.Number, lexeme, pos))
			i = j + 1
			continue
		}
		out = append(out, token.New(token.Operator, sym, pos))
		i = j
	}
	return out
}
