package swag

import (
	"fmt"
	"regexp"
	"strings"
)

// Lint rules.
const (
	RuleMultipleBody       = "multiple-body"
	RuleBodyAndFormData    = "body-and-formdata"
	RulePathParamRequired  = "path-param-required"
	RulePathParamUndefined = "path-param-undefined"
	RuleNoResponses        = "no-responses"
	RuleDuplicateParameter = "duplicate-parameter"
)

// Finding is a Swagger 2.0 rule violation the record validator does not
// catch because it spans several records.
type Finding struct {
	Rule    string
	Pointer string // JSON pointer into the flattened document
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Rule, f.Message, f.Pointer)
}

var templateParamRe = regexp.MustCompile(`\{([^{}]+)\}`)

// Lint reports operation-level problems: more than one body parameter, body
// and formData parameters mixed, path parameters not marked required or
// missing for a template segment, duplicated (name, in) pairs and operations
// without responses.
func Lint(d *Document) []Finding {
	if d == nil {
		return nil
	}
	var findings []Finding
	for _, p := range d.Paths {
		var templated []string
		for _, m := range templateParamRe.FindAllStringSubmatch(p.Endpoint, -1) {
			templated = append(templated, m[1])
		}
		for _, op := range p.Operations {
			ptr := "#/paths/" + escapePointer(p.Endpoint) + "/" + op.Method()
			add := func(rule, format string, args ...any) {
				findings = append(findings, Finding{Rule: rule, Pointer: ptr, Message: fmt.Sprintf(format, args...)})
			}

			bodyCount := 0
			hasFormData := false
			seen := map[string]struct{}{}
			declared := map[string]struct{}{}
			for _, prm := range op.Parameters {
				switch prm.In {
				case InBody:
					bodyCount++
				case InFormData:
					hasFormData = true
				case InPath:
					declared[prm.Name] = struct{}{}
					if prm.Required == nil || !*prm.Required {
						add(RulePathParamRequired, "path parameter %q must be required", prm.Name)
					}
				}
				key := prm.In + ":" + prm.Name
				if _, dup := seen[key]; dup {
					add(RuleDuplicateParameter, "parameter %q in %s is declared more than once", prm.Name, prm.In)
				}
				seen[key] = struct{}{}
			}
			if bodyCount > 1 {
				add(RuleMultipleBody, "%d body parameters; at most one is allowed", bodyCount)
			}
			if bodyCount > 0 && hasFormData {
				add(RuleBodyAndFormData, "body and formData parameters cannot be mixed")
			}
			for _, name := range templated {
				if _, ok := declared[name]; !ok {
					add(RulePathParamUndefined, "template segment {%s} has no path parameter", name)
				}
			}
			if len(op.Responses) == 0 {
				add(RuleNoResponses, "operation declares no responses")
			}
		}
	}
	return findings
}

// escapePointer escapes a JSON pointer reference token (RFC 6901).
func escapePointer(token string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(token)
}
