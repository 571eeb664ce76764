// Copyright 2026, the bracefmt contributors
// SPDX-License-Identifier: AGPL-3.0-only

package msgcheck

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
)

// UnknownArgs is the Message.Args value of a call that spreads a slice with "...".
const UnknownArgs = -1

// Message is a constant msgid found in source.
type Message struct {
	Pos       token.Pos // position of the msgid expression
	PluralPos token.Pos // position of the msgid_plural expression, if any

	Domain  string
	Context string
	ID      string
	Plural  string

	// Args is the number of format arguments passed with the message, or
	// UnknownArgs. A MsgKey never takes arguments.
	Args int
}

// shape gives the argument positions of an i18n function.
// Negative positions mean the parameter does not exist.
type shape struct {
	domain, context, msgid, plural, args int
}

var shapes = map[string]shape{
	"Tr":           {domain: -1, context: -1, msgid: 1, plural: -1, args: 2},
	"TrC":          {domain: -1, context: 1, msgid: 2, plural: -1, args: 3},
	"TrD":          {domain: 1, context: -1, msgid: 2, plural: -1, args: 3},
	"TrN":          {domain: -1, context: -1, msgid: 1, plural: 2, args: 4},
	"TrNC":         {domain: -1, context: 1, msgid: 2, plural: 3, args: 5},
	"TrDN":         {domain: 1, context: -1, msgid: 2, plural: 3, args: 5},
	"NewUserError": {domain: -1, context: -1, msgid: 1, plural: -1, args: 2},
}

// Finder recognises i18n calls and i18n.MsgKey conversions in type-checked syntax.
//
// The i18n package is recognised by its name and by defining a MsgKey type whose
// underlying type is string, regardless of how it is imported or aliased.
type Finder struct {
	Info *types.Info
	Emit func(Message)

	pkgs map[*types.Package]bool
}

// Visit inspects n, which may be any node; only calls and composite literals are examined.
func (f *Finder) Visit(n ast.Node) {
	switch x := n.(type) {
	case *ast.CallExpr:
		f.call(x)
	case *ast.CompositeLit:
		f.compositeLit(x)
	}
}

// IsI18nPackage reports whether pkg is the i18n package.
func IsI18nPackage(pkg *types.Package) bool {
	if pkg == nil || pkg.Name() != "i18n" {
		return false
	}

	tn, ok := pkg.Scope().Lookup("MsgKey").(*types.TypeName)
	if !ok {
		return false
	}

	basic, ok := tn.Type().Underlying().(*types.Basic)

	return ok && basic.Kind() == types.String
}

func (f *Finder) isI18n(pkg *types.Package) bool {
	if f.pkgs == nil {
		f.pkgs = make(map[*types.Package]bool)
	}

	is, ok := f.pkgs[pkg]
	if !ok {
		is = IsI18nPackage(pkg)
		f.pkgs[pkg] = is
	}

	return is
}

// constString evaluates expr to a constant string if possible using types.Info.
// Handles string literals, const identifiers, and constant expressions like "a" + "b".
func (f *Finder) constString(expr ast.Expr) (string, bool) {
	tv, ok := f.Info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// isMsgKey reports whether t is exactly the named type i18n.MsgKey.
// Aliases resolve to the named type behind them.
func (f *Finder) isMsgKey(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj != nil && obj.Name() == "MsgKey" && f.isI18n(obj.Pkg())
}

func (f *Finder) msgKey(expr ast.Expr) {
	if msg, ok := f.constString(expr); ok {
		f.Emit(Message{Pos: expr.Pos(), ID: msg})
	}
}

// compositeLit finds implicit conversions to i18n.MsgKey in map, slice, array and struct literals.
func (f *Finder) compositeLit(x *ast.CompositeLit) {
	tv, ok := f.Info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	// Unwrap one level of pointer so &T{...} is treated as T{...}.
	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok && p.Elem() != nil {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Map:
		keyIsMK, valIsMK := f.isMsgKey(u.Key()), f.isMsgKey(u.Elem())
		if !keyIsMK && !valIsMK {
			return
		}

		for _, elt := range x.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}

			if keyIsMK {
				f.msgKey(kv.Key)
			}

			if valIsMK {
				f.msgKey(kv.Value)
			}
		}

	case *types.Slice:
		f.elements(x, u.Elem())
	case *types.Array:
		f.elements(x, u.Elem())

	case *types.Struct:
		for i, elt := range x.Elts {
			// Keyed field: FieldName: "..."
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				id, ok := kv.Key.(*ast.Ident)
				if !ok {
					continue
				}

				if v, ok := f.Info.Uses[id].(*types.Var); ok && v.IsField() && f.isMsgKey(v.Type()) {
					f.msgKey(kv.Value)
				}

				continue
			}

			// Positional field: rely on declared field order.
			if i < u.NumFields() && f.isMsgKey(u.Field(i).Type()) {
				f.msgKey(elt)
			}
		}
	}
}

func (f *Finder) elements(x *ast.CompositeLit, elem types.Type) {
	if !f.isMsgKey(elem) {
		return
	}

	for _, elt := range x.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value
		}

		f.msgKey(elt)
	}
}

// call inspects function calls and type conversions.
func (f *Finder) call(x *ast.CallExpr) {
	// Type conversion, e.g., i18n.MsgKey("Hello").
	if tv, ok := f.Info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && f.isMsgKey(tv.Type) {
			f.msgKey(x.Args[0])
		}

		return
	}

	if f.trCall(x) {
		return
	}

	// Any other call with i18n.MsgKey parameters converts its constant arguments implicitly.
	sig, ok := f.Info.TypeOf(x.Fun).(*types.Signature)
	if !ok {
		return
	}

	params := sig.Params()

	n := params.Len()
	if n == 0 {
		return
	}

	variadic := sig.Variadic()
	last := n - 1

	for i, arg := range x.Args {
		var pt types.Type

		if variadic && i >= last {
			// If called with ...slice, composite literal handling discovers the elements.
			if x.Ellipsis != token.NoPos {
				continue
			}

			pt = params.At(last).Type().(*types.Slice).Elem()
		} else {
			if i >= n {
				break
			}

			pt = params.At(i).Type()
		}

		if f.isMsgKey(pt) {
			f.msgKey(arg)
		}
	}
}

// trCall handles the Tr family and NewUserError, reporting whether x was one of them.
func (f *Finder) trCall(x *ast.CallExpr) bool {
	var id *ast.Ident

	switch fun := ast.Unparen(x.Fun).(type) {
	case *ast.SelectorExpr:
		id = fun.Sel
	case *ast.Ident:
		id = fun
	default:
		return false
	}

	fn, ok := f.Info.Uses[id].(*types.Func)
	if !ok || !f.isI18n(fn.Pkg()) {
		return false
	}

	// Methods such as MsgKey.Tr share names with the functions.
	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return false
	}

	s, ok := shapes[fn.Name()]
	if !ok || len(x.Args) < s.args {
		return false
	}

	m := Message{Args: len(x.Args) - s.args}
	if x.Ellipsis != token.NoPos {
		m.Args = UnknownArgs
	}

	if m.ID, ok = f.constString(x.Args[s.msgid]); !ok {
		return true
	}

	m.Pos = x.Args[s.msgid].Pos()

	if s.plural >= 0 {
		if m.Plural, ok = f.constString(x.Args[s.plural]); !ok {
			return true
		}

		m.PluralPos = x.Args[s.plural].Pos()
	}

	if s.context >= 0 {
		if m.Context, ok = f.constString(x.Args[s.context]); !ok {
			return true
		}
	}

	if s.domain >= 0 {
		if m.Domain, ok = f.constString(x.Args[s.domain]); !ok {
			return true
		}
	}

	f.Emit(m)

	return true
}
