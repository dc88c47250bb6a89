package parser

import (
	"github.com/leapstack-labs/sqlfront/pkg/token"
)

// Statement parsing: SELECT core, FROM with joins, and trailing clauses.
//
// Raw tree shape: the statement node is rooted at the SELECT keyword
// token. Select items come first, then one node per clause rooted at the
// clause keyword. Interior nodes leave their boundaries unset; the tree
// normalizer infers them from descendants.

// parseSelect parses a SELECT statement.
func (p *Parser) parseSelect() *RawNode {
	sel := ruleNode(p.cur(), p.pos)
	p.advance() // SELECT

	if p.checkAny(token.DISTINCT, token.ALL) {
		sel.AddChild(p.leafAdvance())
	}

	sel.AddChild(p.parseSelectItem())
	for p.match(token.COMMA) {
		if p.bail() {
			return sel
		}
		sel.AddChild(p.parseSelectItem())
	}

	if p.check(token.FROM) {
		sel.AddChild(p.parseFromClause())
	}
	if p.check(token.WHERE) {
		where := ruleNode(p.cur(), p.pos)
		p.advance()
		where.AddChild(p.parseExpression())
		sel.AddChild(where)
	}
	if p.check(token.GROUP) {
		sel.AddChild(p.parseGroupBy())
	}
	if p.check(token.HAVING) {
		having := ruleNode(p.cur(), p.pos)
		p.advance()
		having.AddChild(p.parseExpression())
		sel.AddChild(having)
	}
	if p.check(token.ORDER) {
		sel.AddChild(p.parseOrderBy())
	}
	if p.check(token.LIMIT) {
		sel.AddChild(p.parseLimit())
	}

	return sel
}

// parseSelectItem parses one item of the select list: a star, or an
// expression with an optional alias.
func (p *Parser) parseSelectItem() *RawNode {
	if p.check(token.STAR) {
		return p.leafAdvance()
	}

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	return p.parseAlias(expr)
}

// parseAlias attaches an optional [AS] identifier alias to a node.
// An explicit AS roots the binding at the AS token; an implicit alias
// gets a virtual ALIAS node since no source token can root it.
func (p *Parser) parseAlias(n *RawNode) *RawNode {
	if p.check(token.AS) {
		as := ruleNode(p.cur(), p.pos, n)
		p.advance()
		if p.check(token.IDENT) {
			as.AddChild(p.leafAdvance())
		} else {
			p.report(MismatchedToken, p.cur(), []string{token.IDENT.String()})
			p.resync(clauseFollow...)
		}
		return as
	}
	if p.check(token.IDENT) {
		name := p.cur()
		return virtualNode(Alias, name.Literal, name.Pos, n, p.leafAdvance())
	}
	return n
}

// parseFromClause parses FROM with comma-separated table references.
func (p *Parser) parseFromClause() *RawNode {
	from := ruleNode(p.cur(), p.pos)
	p.advance() // FROM

	from.AddChild(p.parseTableRefs())
	for p.match(token.COMMA) {
		if p.bail() {
			return from
		}
		from.AddChild(p.parseTableRefs())
	}
	return from
}

// parseTableRefs parses a table reference followed by any number of
// joins, combining them left-associatively under the JOIN tokens.
func (p *Parser) parseTableRefs() *RawNode {
	left := p.parseTableRef()

	for p.checkAny(token.JOIN, token.INNER, token.CROSS, token.LEFT, token.RIGHT, token.FULL) {
		if p.bail() {
			return left
		}

		// Leading join-kind keywords become leaf children of the join node.
		var kind []*RawNode
		for p.checkAny(token.INNER, token.CROSS, token.LEFT, token.RIGHT, token.FULL, token.OUTER) {
			kind = append(kind, p.leafAdvance())
		}

		if !p.check(token.JOIN) {
			p.report(MismatchedToken, p.cur(), []string{token.JOIN.String()})
			p.resync(clauseFollow...)
			return left
		}
		join := ruleNode(p.cur(), p.pos)
		p.advance() // JOIN

		for _, k := range kind {
			join.AddChild(k)
		}
		join.AddChild(left)
		join.AddChild(p.parseTableRef())

		if p.check(token.ON) {
			on := ruleNode(p.cur(), p.pos)
			p.advance()
			on.AddChild(p.parseExpression())
			join.AddChild(on)
		}
		left = join
	}
	return left
}

// parseTableRef parses a (possibly qualified, possibly aliased) table
// name or a parenthesized subquery.
func (p *Parser) parseTableRef() *RawNode {
	if p.check(token.LPAREN) {
		open := p.cur()
		p.advance()
		if !p.check(token.SELECT) {
			p.report(NoViableAlternative, p.cur(), []string{token.SELECT.String()})
			p.resync(clauseFollow...)
			return nil
		}
		stmt := p.parseSelect()
		p.expect(token.RPAREN)
		sub := virtualNode(Subquery, "", open.Pos, stmt)
		return p.parseAlias(sub)
	}

	if !p.check(token.IDENT) {
		p.report(MismatchedToken, p.cur(), []string{token.IDENT.String()})
		p.resync(clauseFollow...)
		return nil
	}

	ref := p.leafAdvance()
	for p.check(token.DOT) {
		dot := ruleNode(p.cur(), p.pos, ref)
		p.advance()
		if p.check(token.IDENT) {
			dot.AddChild(p.leafAdvance())
		} else {
			p.report(MismatchedToken, p.cur(), []string{token.IDENT.String()})
			p.resync(clauseFollow...)
		}
		ref = dot
	}
	return p.parseAlias(ref)
}

// parseGroupBy parses GROUP BY with an expression list.
func (p *Parser) parseGroupBy() *RawNode {
	group := ruleNode(p.cur(), p.pos)
	p.advance() // GROUP
	p.expect(token.BY)

	group.AddChild(p.parseExpression())
	for p.match(token.COMMA) {
		if p.bail() {
			return group
		}
		group.AddChild(p.parseExpression())
	}
	return group
}

// parseOrderBy parses ORDER BY with optional per-item direction.
func (p *Parser) parseOrderBy() *RawNode {
	order := ruleNode(p.cur(), p.pos)
	p.advance() // ORDER
	p.expect(token.BY)

	order.AddChild(p.parseOrderItem())
	for p.match(token.COMMA) {
		if p.bail() {
			return order
		}
		order.AddChild(p.parseOrderItem())
	}
	return order
}

// parseOrderItem parses one ORDER BY item; ASC/DESC roots the expression
// when present.
func (p *Parser) parseOrderItem() *RawNode {
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if p.checkAny(token.ASC, token.DESC) {
		dir := ruleNode(p.cur(), p.pos, expr)
		p.advance()
		return dir
	}
	return expr
}

// parseLimit parses LIMIT with an optional OFFSET.
func (p *Parser) parseLimit() *RawNode {
	limit := ruleNode(p.cur(), p.pos)
	p.advance() // LIMIT
	limit.AddChild(p.parseExpression())

	if p.check(token.OFFSET) {
		offset := ruleNode(p.cur(), p.pos)
		p.advance()
		offset.AddChild(p.parseExpression())
		limit.AddChild(offset)
	}
	return limit
}
