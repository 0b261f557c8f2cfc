package ir

import (
	"fmt"
	"strings"
)

// Dump returns a human-readable representation of a lowered expression.
// Let chains are printed one binding per line so generated accessor
// sequences read top to bottom; everything else renders inline.
func Dump(e Expr) string {
	var sb strings.Builder

	for {
		let, ok := e.(*Let)
		if !ok {
			break
		}
		sb.WriteString(fmt.Sprintf("let %s = %s in\n", let.Name, inline(let.Value)))
		e = let.Body
	}
	sb.WriteString(inline(e))
	sb.WriteString("\n")

	return sb.String()
}

func inline(e Expr) string {
	switch node := e.(type) {
	case *Var:
		return node.Name

	case *Let:
		return fmt.Sprintf("(let %s = %s in %s)", node.Name, inline(node.Value), inline(node.Body))

	case *Builtin:
		return fmt.Sprintf("%s(%s)", node.Fn.String(), inlineArgs(node.Args))

	case *Call:
		return fmt.Sprintf("%s(%s)", inline(node.Fn), inlineArgs(node.Args))

	case *Lambda:
		return fmt.Sprintf("\\%s -> %s", strings.Join(node.Params, " "), inline(node.Body))

	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func inlineArgs(args []Expr) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = inline(arg)
	}
	return strings.Join(parts, ", ")
}
