package mustuse

import (
	"fmt"
	"strings"
)

// Context is the syntactic context shape of a single reference to a
// parameter.
type Context uint8

const (
	// ContextOther is any context not listed below, such as a return
	// value, an operand or a composite literal element.
	ContextOther Context = iota
	// ContextCallee is the function being called: c(), go c(), defer c().
	ContextCallee
	// ContextInvoke is the receiver of the Invoke method: c.Invoke(),
	// or the method value c.Invoke.
	ContextInvoke
	// ContextArgument is an argument of a function call: f(c).
	ContextArgument
	// ContextAssignTarget is the destination of a write: c = x, c++.
	ContextAssignTarget
	// ContextDiscard is a value bound to the blank identifier: _ = c.
	ContextDiscard
	// ContextMember is the receiver of any other selector: c.Close(), c.F.
	ContextMember
	// ContextAssignSource is a value bound to a named variable: x := c.
	ContextAssignSource
)

func (ctx Context) String() string {
	switch ctx {
	case ContextOther:
		return "other"
	case ContextCallee:
		return "callee"
	case ContextInvoke:
		return "invoke"
	case ContextArgument:
		return "argument"
	case ContextAssignTarget:
		return "assignment target"
	case ContextDiscard:
		return "discard"
	case ContextMember:
		return "member access"
	case ContextAssignSource:
		return "assignment source"
	default:
		return fmt.Sprintf("Context(%d)", uint8(ctx))
	}
}

// Verdict says whether a parameter's must-use obligation is met.
type Verdict uint8

const (
	NotConsumed Verdict = iota
	Consumed
)

func (v Verdict) String() string {
	switch v {
	case NotConsumed:
		return "not consumed"
	case Consumed:
		return "consumed"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Policy decides which contexts count as consuming a value.
//
//	context       invocation  strict  permissive
//	callee        yes         yes     yes
//	invoke                    yes     yes
//	argument                  yes     yes
//	member access                     yes
//	assign source                     yes
//
// Writes, discards and all other contexts never consume a value.
type Policy uint8

const (
	// PolicyStrict accepts calls, calls of the Invoke method and
	// passing the value to another function. It is the default.
	PolicyStrict Policy = iota
	// PolicyInvocation only accepts direct calls.
	PolicyInvocation
	// PolicyPermissive additionally accepts any member access and
	// storing the value in another variable.
	PolicyPermissive
)

var policyNames = map[Policy]string{
	PolicyStrict:     "strict",
	PolicyInvocation: "invocation",
	PolicyPermissive: "permissive",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy parses the name of a policy.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q, must be one of invocation, strict, permissive", s)
}

// Classify returns the verdict of a single reference in context ctx.
func (p Policy) Classify(ctx Context) Verdict {
	switch ctx {
	case ContextCallee:
		return Consumed
	case ContextInvoke, ContextArgument:
		if p == PolicyStrict || p == PolicyPermissive {
			return Consumed
		}
	case ContextMember, ContextAssignSource:
		if p == PolicyPermissive {
			return Consumed
		}
	}
	return NotConsumed
}

// Fold reduces the references of one parameter to a verdict. A single
// consuming reference suffices; a parameter without references is
// not consumed.
func (p Policy) Fold(refs []Reference) Verdict {
	for _, ref := range refs {
		if p.Classify(ref.Context) == Consumed {
			return Consumed
		}
	}
	return NotConsumed
}

// policyFlag is the flag.Value of the analyzer's -policy flag. The
// empty string defers to the configuration file.
type policyFlag struct {
	set    bool
	policy Policy
}

func (f *policyFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return f.policy.String()
}

func (f *policyFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f = policyFlag{}
		return nil
	}
	p, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*f = policyFlag{set: true, policy: p}
	return nil
}
