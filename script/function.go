package script

import (
	"regexp"

	"github.com/avicd/go-utilx/conv"
	"github.com/openmfg/go-metasql/param"
)

type Func uint

const (
	FuncUnknown Func = iota
	FuncValue
	FuncLiteral
	FuncExists
	FuncReExists
	FuncIsFirst
	FuncIsLast
	FuncContinue
	FuncBreak
)

var funcNames = map[string]Func{
	"value":    FuncValue,
	"literal":  FuncLiteral,
	"exists":   FuncExists,
	"reexists": FuncReExists,
	"isfirst":  FuncIsFirst,
	"islast":   FuncIsLast,
	"continue": FuncContinue,
	"break":    FuncBreak,
}

func IdentifyFunc(name string) Func {
	if kind, ok := funcNames[name]; ok {
		return kind
	}
	return FuncUnknown
}

// FuncNode is a directive that produces a value, emits a placeholder, or
// signals loop control.
type FuncNode struct {
	Kind     Func
	Args     []string
	nBreaks  int
	noOutput bool
	valid    bool
}

func NewFuncNode(name string, args []string) *FuncNode {
	it := &FuncNode{Kind: IdentifyFunc(name), Args: args}
	switch it.Kind {
	case FuncValue, FuncLiteral, FuncExists, FuncReExists, FuncIsFirst, FuncIsLast:
		it.valid = len(args) >= 1
	case FuncContinue, FuncBreak:
		it.valid = true
		it.noOutput = true
		if len(args) >= 1 && conv.IsDigit(args[0]) {
			it.nBreaks = int(conv.ParseInt(args[0]))
		}
		if it.nBreaks < 1 {
			it.nBreaks = 1
		}
	}
	return it
}

func (it *FuncNode) IsValid() bool {
	return it.valid
}

func (it *FuncNode) Render(ctx Context, params *param.Params) Flow {
	if it.noOutput {
		_, flow := it.Eval(params)
		return flow
	}
	val, flow := it.Eval(params)
	if it.Kind == FuncLiteral {
		ctx.Append(param.AsString(val))
		return flow
	}
	ctx.Append(ctx.BindValue(val) + " ")
	return flow
}

// Eval resolves the function's value against the environment without
// emitting output. Conditions in if/elseif evaluate through here.
func (it *FuncNode) Eval(params *param.Params) (any, Flow) {
	if !it.valid {
		return nil, Flow{}
	}
	switch it.Kind {
	case FuncValue, FuncLiteral:
		return it.resolve(params), Flow{}
	case FuncExists:
		_, found := params.Value(it.Args[0])
		return found, Flow{}
	case FuncReExists:
		re, err := regexp.Compile(it.Args[0])
		if err != nil {
			return false, Flow{}
		}
		for i := 0; i < params.Count(); i++ {
			if re.MatchString(params.Name(i)) {
				return true, Flow{}
			}
		}
		return false, Flow{}
	case FuncIsFirst, FuncIsLast:
		return it.position(params), Flow{}
	case FuncContinue, FuncBreak:
		return nil, Flow{Breaks: it.nBreaks, Continue: it.Kind == FuncContinue}
	}
	return nil, Flow{}
}

// resolve looks up the named parameter. For list values the current
// iteration entry selects the element; outside a loop over that list the
// first element stands in.
func (it *FuncNode) resolve(params *param.Params) any {
	name := it.Args[0]
	val, _ := params.Value(name)
	items, isList := param.ListOf(val)
	if !isList {
		return val
	}
	if pos, found := params.Value(name + ForeachPosSuffix); found {
		i := param.AsInt(pos)
		if i >= 0 && i < len(items) {
			return items[i]
		}
		return nil
	}
	if len(items) > 0 {
		return items[0]
	}
	return nil
}

func (it *FuncNode) position(params *param.Params) bool {
	name := it.Args[0]
	val, found := params.Value(name)
	if !found {
		return false
	}
	items, isList := param.ListOf(val)
	if !isList {
		return true
	}
	pos := 0
	if t, ok := params.Value(name + ForeachPosSuffix); ok {
		pos = param.AsInt(t)
	}
	if len(items) < 1 {
		return false
	}
	if it.Kind == FuncIsFirst {
		return pos == 0
	}
	return pos+1 == len(items)
}
