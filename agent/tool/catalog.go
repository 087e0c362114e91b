package tool

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
)

const (
	ToolSearchDocs = "search_docs"
	ParamQuery     = "q"
)

type entry struct {
	info   *schema.ToolInfo
	params map[string]*schema.ParameterInfo
}

var catalog = func() map[string]entry {
	searchDocsParams := map[string]*schema.ParameterInfo{
		ParamQuery: {Type: schema.String, Desc: "Ticket text to search the documentation for", Required: true},
	}
	return map[string]entry{
		ToolSearchDocs: {
			info: &schema.ToolInfo{
				Name:        ToolSearchDocs,
				Desc:        "Search support documentation and return matching articles.",
				ParamsOneOf: schema.NewParamsOneOfByParams(searchDocsParams),
			},
			params: searchDocsParams,
		},
	}
}()

// Infos lists the tools the agent may call, sorted by name.
func Infos() []*schema.ToolInfo {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]*schema.ToolInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, catalog[name].info)
	}
	return infos
}

func Lookup(name string) (*schema.ToolInfo, bool) {
	e, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return e.info, true
}

// NewCall builds a tool call after checking it against the catalog.
func NewCall(name string, callID string, args map[string]any) (contractx.ToolCall, error) {
	e, ok := catalog[name]
	if !ok {
		return contractx.ToolCall{}, fmt.Errorf("%w: tool=%s is not in the catalog", contractx.ErrValidation, name)
	}
	if strings.TrimSpace(callID) == "" {
		return contractx.ToolCall{}, fmt.Errorf("%w: call id is empty for tool=%s", contractx.ErrValidation, name)
	}

	for param, info := range e.params {
		// declared types describe the usual value; whatever the task carried is passed through
		if _, present := args[param]; !present && info.Required {
			return contractx.ToolCall{}, fmt.Errorf("%w: tool=%s missing required arg %q", contractx.ErrValidation, name, param)
		}
	}
	for param := range args {
		if _, ok := e.params[param]; !ok {
			return contractx.ToolCall{}, fmt.Errorf("%w: tool=%s has no arg %q", contractx.ErrValidation, name, param)
		}
	}

	copied := make(map[string]any, len(args))
	for k, v := range args {
		copied[k] = v
	}
	return contractx.ToolCall{
		Name:   name,
		CallID: callID,
		Args:   copied,
	}, nil
}
