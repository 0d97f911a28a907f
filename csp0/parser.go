package csp0

import (
	"strconv"

	"github.com/hstlab/cspkit/csp"
)

// Parse reads src as a CSP₀ expression against env and returns the root
// process it denotes (spec.md §6.1).  On malformed input it returns a
// *ParseError describing the first failure; there is no partial-result
// reporting.
func Parse(env *csp.Environment, src string) (csp.Process, error) {
	p := &parser{env: env, lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	proc, err := p.parseInterleave()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{Msg: "unexpected trailing input " + strconv.Quote(p.tok.text), Offset: p.tok.offset}
	}
	return proc, nil
}

type parser struct {
	env   *csp.Environment
	lex   *lexer
	tok   token
	scope []*csp.Scope // stack of lexically-enclosing let scopes, innermost last
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) expect(k tokKind, what string) (token, error) {
	if p.tok.kind != k {
		return token{}, &ParseError{Msg: "expected " + what, Offset: p.tok.offset}
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

// parseInterleave is the entry point: it is the loosest-binding binary
// operator (spec.md §6.1 grammar, level 6), right-associative.
func (p *parser) parseInterleave() (csp.Process, error) {
	left, err := p.parseInternalChoice()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokInterleave {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseInterleave()
	if err != nil {
		return nil, err
	}
	return p.env.Interleave([]csp.Process{left, right}), nil
}

func (p *parser) parseInternalChoice() (csp.Process, error) {
	left, err := p.parseExternalChoice()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokInternalChoice {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseInternalChoice()
	if err != nil {
		return nil, err
	}
	return p.env.InternalChoice([]csp.Process{left, right}), nil
}

func (p *parser) parseExternalChoice() (csp.Process, error) {
	left, err := p.parseSequential()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokExternalChoice {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExternalChoice()
	if err != nil {
		return nil, err
	}
	return p.env.ExternalChoice([]csp.Process{left, right}), nil
}

func (p *parser) parseSequential() (csp.Process, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokSemi || p.semiEndsLetClause() {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseSequential()
	if err != nil {
		return nil, err
	}
	return p.env.SequentialComposition(left, right), nil
}

// semiEndsLetClause reports whether the ";" token just seen opens a new
// let-clause ("; name =") rather than a sequential composition. A
// process can never start with "ident =" — a bare reference is followed
// only by "@" (scope suffix) or nothing — so this two-token lookahead
// disambiguates the two uses of ";" without threading any extra state
// through the precedence chain.
func (p *parser) semiEndsLetClause() bool {
	save := *p.lex
	savedTok := p.tok
	defer func() { *p.lex = save; p.tok = savedTok }()

	nameTok, err := p.lex.next()
	if err != nil || nameTok.kind != tokIdent {
		return false
	}
	eqTok, err := p.lex.next()
	return err == nil && eqTok.kind == tokEquals
}

// parsePrefix handles "a → P" (level 2). The event name is any
// identifier that is not one of the reserved primary keywords; it is
// interned directly, never resolved against a scope.
func (p *parser) parsePrefix() (csp.Process, error) {
	if p.tok.kind == tokIdent && p.startsArrow() {
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokArrow, "\"→\""); err != nil {
			return nil, err
		}
		target, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		a := p.env.Events().Intern(name)
		return p.env.Prefix(a, target), nil
	}
	return p.parsePrimary()
}

// startsArrow reports whether the lexer's *next* token after the
// current identifier is an arrow, without consuming anything — the
// lookahead needed to tell "a → P" from a bare identifier reference.
func (p *parser) startsArrow() bool {
	save := *p.lex
	savedTok := p.tok
	defer func() { *p.lex = save; p.tok = savedTok }()
	t, err := p.lex.next()
	return err == nil && t.kind == tokArrow
}

func (p *parser) parsePrimary() (csp.Process, error) {
	switch p.tok.kind {
	case tokStop:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.env.Stop(), nil

	case tokSkip:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.env.Skip(), nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseInterleave()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "\")\""); err != nil {
			return nil, err
		}
		return inner, nil

	case tokExternalChoice, tokInternalChoice, tokInterleave:
		return p.parseReplicated(p.tok.kind)

	case tokPrenormalize:
		if err := p.advance(); err != nil {
			return nil, err
		}
		members, err := p.parseBraceList()
		if err != nil {
			return nil, err
		}
		return p.env.Prenormalise(members), nil

	case tokLet:
		return p.parseLet()

	case tokIdent:
		return p.parseReference()

	default:
		return nil, &ParseError{Msg: "expected a process", Offset: p.tok.offset}
	}
}

// parseReplicated handles the replicated forms "□ {P, …}", "⊓ {P, …}",
// "⫴ {P, …}" (spec.md §6.1 grammar, level 7).  Braces are required;
// an empty list is legal for every one of the three.
func (p *parser) parseReplicated(op tokKind) (csp.Process, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	members, err := p.parseBraceList()
	if err != nil {
		return nil, err
	}
	switch op {
	case tokExternalChoice:
		return p.env.ExternalChoice(members), nil
	case tokInternalChoice:
		return p.env.InternalChoice(members), nil
	default:
		return p.env.Interleave(members), nil
	}
}

func (p *parser) parseBraceList() ([]csp.Process, error) {
	if _, err := p.expect(tokLBrace, "\"{\""); err != nil {
		return nil, err
	}
	var out []csp.Process
	if p.tok.kind == tokRBrace {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return out, nil
	}
	for {
		m, err := p.parseInterleave()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
		if p.tok.kind == tokComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(tokRBrace, "\"}\""); err != nil {
		return nil, err
	}
	return out, nil
}

// parseReference resolves a bare identifier, or an "X@N" scope-suffixed
// reference (spec.md §6.1).  Each let block is its own namespace: a
// bare name always resolves within the innermost currently-open scope
// (creating a forward-reference placeholder on first mention, exactly
// as Scope.Add documents); reaching into an enclosing or unrelated
// scope requires the explicit "X@N" spelling.
func (p *parser) parseReference() (csp.Process, error) {
	name := p.tok.text
	offset := p.tok.offset
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokAt {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idTok, err := p.expect(tokInt, "a scope id after \"@\"")
		if err != nil {
			return nil, err
		}
		id, convErr := strconv.Atoi(idTok.text)
		if convErr != nil {
			return nil, &ParseError{Msg: "malformed scope id", Offset: idTok.offset}
		}
		scope, ok := p.env.ScopeByID(id)
		if !ok {
			return nil, &ParseError{Msg: "reference to unknown scope " + idTok.text, Offset: idTok.offset}
		}
		return scope.Add(name), nil
	}

	if len(p.scope) == 0 {
		return nil, &ParseError{Msg: "undefined identifier " + strconv.Quote(name) + " outside a let", Offset: offset}
	}
	return p.scope[len(p.scope)-1].Add(name), nil
}

// parseLet handles "let name = P … within P" (spec.md §6.1 grammar,
// level 8), with mutual recursion among the names declared in one
// block (spec.md §3.3, §4.4).
func (p *parser) parseLet() (csp.Process, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	scope := p.env.NewScope()
	p.scope = append(p.scope, scope)
	defer func() { p.scope = p.scope[:len(p.scope)-1] }()

	declared := make(map[string]bool)
	for {
		nameTok, err := p.expect(tokIdent, "a name")
		if err != nil {
			return nil, err
		}
		if declared[nameTok.text] {
			return nil, &ParseError{Msg: "duplicate definition of " + strconv.Quote(nameTok.text), Offset: nameTok.offset}
		}
		declared[nameTok.text] = true

		if _, err := p.expect(tokEquals, "\"=\""); err != nil {
			return nil, err
		}
		def, err := p.parseInterleave()
		if err != nil {
			return nil, err
		}
		ref := scope.Add(nameTok.text)
		if err := ref.Fill(def); err != nil {
			return nil, &ParseError{Msg: err.Error(), Offset: nameTok.offset}
		}

		if p.tok.kind == tokSemi {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if unfilled := scope.Unfilled(); len(unfilled) > 0 {
		return nil, &ParseError{Msg: "unfilled name " + strconv.Quote(unfilled[0]) + " at close of let", Offset: p.tok.offset}
	}

	if _, err := p.expect(tokWithin, "\"within\""); err != nil {
		return nil, err
	}
	return p.parseInterleave()
}
