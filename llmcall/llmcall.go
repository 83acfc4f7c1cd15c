// Package llmcall resolves tool-call arguments emitted by language
// models into ready-to-send parameter maps. Model output is where the
// malformed inputs the resolve package handles actually come from:
// truncated JSON, code-fenced payloads, shell-style flag strings, and
// bare script text all appear in real completions.
//
// Example usage:
//
//	resolver := resolve.NewResolver()
//	for _, call := range llmcall.FromResponse(resolver, response) {
//	    result, err := client.CallTool(ctx, call.Tool, call.Params)
//	    ...
//	}
package llmcall

import (
	"github.com/robustcall/mcall"
	"github.com/robustcall/mcall/resolve"
	"github.com/tmc/langchaingo/llms"
)

// Call is one tool invocation recovered from model output.
type Call struct {
	// ID is the provider's tool call ID, echoed back in tool results.
	ID string

	// Tool is the tool name the model asked for.
	Tool string

	// Params holds the resolved arguments.
	Params mcall.Params
}

// FromToolCall resolves a single tool call's argument string. Returns
// false when the call carries no function invocation.
func FromToolCall(r *resolve.Resolver, tc llms.ToolCall) (Call, bool) {
	if tc.FunctionCall == nil || tc.FunctionCall.Name == "" {
		return Call{}, false
	}
	name := tc.FunctionCall.Name
	return Call{
		ID:     tc.ID,
		Tool:   name,
		Params: r.Resolve(tc.FunctionCall.Arguments, name),
	}, true
}

// FromResponse resolves every tool call in a model response, across all
// choices, in order.
func FromResponse(r *resolve.Resolver, resp *llms.ContentResponse) []Call {
	if resp == nil {
		return nil
	}
	var calls []Call
	for _, choice := range resp.Choices {
		if choice == nil {
			continue
		}
		for _, tc := range choice.ToolCalls {
			if call, ok := FromToolCall(r, tc); ok {
				calls = append(calls, call)
			}
		}
	}
	return calls
}
