package script

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/runledger-agent/agent/contract"
	toolx "github.com/tanpawarit/runledger-agent/agent/tool"
)

// Config holds the scripted values the agent replies with. Defaults reproduce
// the canonical search_docs / account exchange.
type Config struct {
	ToolName string `envconfig:"TOOL_NAME" split_words:"true" default:"search_docs"`
	CallID   string `envconfig:"CALL_ID" split_words:"true" default:"c1"`
	QueryArg string `envconfig:"QUERY_ARG" split_words:"true" default:"q"`
	Category string `envconfig:"CATEGORY" split_words:"true" default:"account"`
	Reply    string `envconfig:"REPLY" split_words:"true" default:"Reset password instructions sent."`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ToolName) == "" {
		return fmt.Errorf("%w: tool name is required", contractx.ErrValidation)
	}
	if _, ok := toolx.Lookup(c.ToolName); !ok {
		return fmt.Errorf("%w: tool=%s is not in the catalog", contractx.ErrValidation, c.ToolName)
	}
	if strings.TrimSpace(c.CallID) == "" {
		return fmt.Errorf("%w: call id is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.QueryArg) == "" {
		return fmt.Errorf("%w: query arg is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Category) == "" {
		return fmt.Errorf("%w: category is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Reply) == "" {
		return fmt.Errorf("%w: reply is required", contractx.ErrValidation)
	}
	return nil
}
