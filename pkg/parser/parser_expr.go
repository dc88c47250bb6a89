package parser

import (
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Expression parsing with precedence climbing. Operator tokens root their
// operand subtrees, so the raw tree needs no dedicated expression node
// kinds beyond CALL and SUBQUERY.
const (
	precNone = iota
	precOr
	precAnd
	precNot
	precComparison // =, !=, <, >, <=, >=, IS, IN, BETWEEN, LIKE
	precAddition   // +, -, ||
	precMultiply   // *, /, %
	precUnary      // -, +, NOT
)

// parseExpression parses an expression.
func (p *Parser) parseExpression() *RawNode {
	return p.parseExprPrec(precNone + 1)
}

// parseExprPrec implements precedence climbing.
func (p *Parser) parseExprPrec(minPrec int) *RawNode {
	left := p.parsePrefixExpr()
	if left == nil {
		return nil
	}

	for !p.bail() {
		prec := p.infixPrecedence(p.cur().Type)
		if prec < minPrec {
			break
		}
		left = p.parseInfixExpr(left, prec)
		if left == nil {
			break
		}
	}
	return left
}

// parsePrefixExpr parses unary operators and primary expressions.
func (p *Parser) parsePrefixExpr() *RawNode {
	switch p.cur().Type {
	case token.NOT, token.MINUS, token.PLUS:
		op := ruleNode(p.cur(), p.pos)
		prec := precUnary
		if p.check(token.NOT) {
			prec = precNot
		}
		p.advance()
		op.AddChild(p.parseExprPrec(prec))
		return op
	default:
		return p.parsePrimary()
	}
}

// infixPrecedence returns the precedence of t as an infix operator,
// or precNone if it is not one.
func (p *Parser) infixPrecedence(t token.Type) int {
	switch t {
	case token.OR:
		return precOr
	case token.AND:
		return precAnd
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.IS, token.IN, token.BETWEEN, token.LIKE, token.NOT:
		return precComparison
	case token.PLUS, token.MINUS, token.DPIPE:
		return precAddition
	case token.STAR, token.SLASH, token.PERCENT:
		return precMultiply
	}
	return precNone
}

// parseInfixExpr parses one infix operation with left as the first operand.
func (p *Parser) parseInfixExpr(left *RawNode, prec int) *RawNode {
	switch p.cur().Type {
	case token.IS:
		return p.parseIs(left)
	case token.IN:
		return p.parseIn(left)
	case token.BETWEEN:
		return p.parseBetween(left)
	case token.NOT:
		// Infix NOT: NOT IN, NOT LIKE, NOT BETWEEN.
		not := ruleNode(p.cur(), p.pos)
		p.advance()
		if !p.checkAny(token.IN, token.LIKE, token.BETWEEN) {
			p.report(MismatchedToken, p.cur(), []string{
				token.IN.String(), token.LIKE.String(), token.BETWEEN.String(),
			})
			p.resync(clauseFollow...)
			return left
		}
		not.AddChild(p.parseInfixExpr(left, prec))
		return not
	default:
		op := ruleNode(p.cur(), p.pos, left)
		p.advance()
		op.AddChild(p.parseExprPrec(prec + 1))
		return op
	}
}

// parseIs parses IS [NOT] NULL|TRUE|FALSE.
func (p *Parser) parseIs(left *RawNode) *RawNode {
	is := ruleNode(p.cur(), p.pos, left)
	p.advance() // IS

	var not *RawNode
	if p.check(token.NOT) {
		not = ruleNode(p.cur(), p.pos)
		p.advance()
	}

	if !p.checkAny(token.NULL, token.TRUE, token.FALSE) {
		p.report(MismatchedToken, p.cur(), []string{
			token.NULL.String(), token.TRUE.String(), token.FALSE.String(),
		})
		p.resync(clauseFollow...)
		return is
	}
	value := p.leafAdvance()

	if not != nil {
		not.AddChild(value)
		is.AddChild(not)
	} else {
		is.AddChild(value)
	}
	return is
}

// parseIn parses IN (expr_list) or IN (subquery).
func (p *Parser) parseIn(left *RawNode) *RawNode {
	in := ruleNode(p.cur(), p.pos, left)
	p.advance() // IN

	if !p.expect(token.LPAREN) {
		p.resync(clauseFollow...)
		return in
	}

	if p.check(token.SELECT) {
		open := p.cur()
		stmt := p.parseSelect()
		in.AddChild(virtualNode(Subquery, "", open.Pos, stmt))
	} else {
		in.AddChild(p.parseExpression())
		for p.match(token.COMMA) {
			if p.bail() {
				return in
			}
			in.AddChild(p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return in
}

// parseBetween parses BETWEEN low AND high. The bounds parse above AND
// precedence so the range's AND is not taken as a logical operator.
func (p *Parser) parseBetween(left *RawNode) *RawNode {
	between := ruleNode(p.cur(), p.pos, left)
	p.advance() // BETWEEN

	between.AddChild(p.parseExprPrec(precComparison + 1))
	p.expect(token.AND)
	between.AddChild(p.parseExprPrec(precComparison + 1))
	return between
}

// parsePrimary parses literals, names, function calls, CASE expressions,
// parenthesized expressions, and subqueries.
func (p *Parser) parsePrimary() *RawNode {
	switch p.cur().Type {
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL, token.STAR:
		return p.leafAdvance()

	case token.CASE:
		return p.parseCase()

	case token.IDENT:
		if p.tokens.Get(p.nextIndex()).Type == token.LPAREN {
			return p.parseCall()
		}
		return p.parseQualifiedName()

	case token.LPAREN:
		open := p.cur()
		p.advance()
		if p.check(token.SELECT) {
			stmt := p.parseSelect()
			p.expect(token.RPAREN)
			return virtualNode(Subquery, "", open.Pos, stmt)
		}
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr

	default:
		p.report(NoViableAlternative, p.cur(), []string{
			token.IDENT.String(), token.NUMBER.String(), token.STRING.String(),
			token.LPAREN.String(),
		})
		p.resync(clauseFollow...)
		return nil
	}
}

// nextIndex returns the index of the token after the current one,
// clamped to the final EOF token.
func (p *Parser) nextIndex() int {
	if p.pos < p.tokens.Len()-1 {
		return p.pos + 1
	}
	return p.pos
}

// parseQualifiedName parses name, name.name, and name.* chains rooted at
// the DOT tokens.
func (p *Parser) parseQualifiedName() *RawNode {
	ref := p.leafAdvance()
	for p.check(token.DOT) {
		dot := ruleNode(p.cur(), p.pos, ref)
		p.advance()
		switch {
		case p.check(token.IDENT), p.check(token.STAR):
			dot.AddChild(p.leafAdvance())
		default:
			p.report(MismatchedToken, p.cur(), []string{
				token.IDENT.String(), token.STAR.String(),
			})
			p.resync(clauseFollow...)
		}
		ref = dot
	}
	return ref
}

// parseCall parses a function call. The call node keeps the original
// function name text and, uniquely among interior nodes, an explicitly
// matched token span from the name to the closing parenthesis.
func (p *Parser) parseCall() *RawNode {
	name := p.cur()
	start := p.pos
	p.advance() // function name
	p.advance() // (

	call := virtualNode(Call, name.Literal, name.Pos)
	call.Start = start

	if p.check(token.STAR) {
		call.AddChild(p.leafAdvance()) // count(*)
	} else if !p.check(token.RPAREN) {
		if p.check(token.DISTINCT) {
			call.AddChild(p.leafAdvance())
		}
		call.AddChild(p.parseExpression())
		for p.match(token.COMMA) {
			if p.bail() {
				return call
			}
			call.AddChild(p.parseExpression())
		}
	}

	if p.check(token.RPAREN) {
		call.Stop = p.pos
		p.advance()
	} else {
		call.Start = -1 // fall back to inferred boundaries
		p.report(MismatchedToken, p.cur(), []string{token.RPAREN.String()})
		p.resync(clauseFollow...)
	}
	return call
}

// parseCase parses simple and searched CASE expressions.
func (p *Parser) parseCase() *RawNode {
	caseNode := ruleNode(p.cur(), p.pos)
	p.advance() // CASE

	// Simple CASE has an operand before the first WHEN.
	if !p.check(token.WHEN) {
		caseNode.AddChild(p.parseExpression())
	}

	for p.check(token.WHEN) {
		when := ruleNode(p.cur(), p.pos)
		p.advance()
		when.AddChild(p.parseExpression())
		p.expect(token.THEN)
		when.AddChild(p.parseExpression())
		caseNode.AddChild(when)
		if p.bail() {
			return caseNode
		}
	}

	if p.check(token.ELSE) {
		elseNode := ruleNode(p.cur(), p.pos)
		p.advance()
		elseNode.AddChild(p.parseExpression())
		caseNode.AddChild(elseNode)
	}

	p.expect(token.END)
	return caseNode
}
