package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arcanaland/hearthlodge/internal/card"
	"github.com/arcanaland/hearthlodge/internal/catalog"
	"github.com/arcanaland/hearthlodge/internal/threat"
)

// tools serves one catalog, which is read-only after loading, so handlers
// may run concurrently
type tools struct {
	catalog  *catalog.Catalog
	resolver *threat.Resolver
}

// NewServer returns an MCP server exposing the catalog's query tools
func NewServer(c *catalog.Catalog, version string) *server.MCPServer {
	s := server.NewMCPServer("hearthlodge", version)
	RegisterTools(s, c)
	return s
}

// RegisterTools adds the card query tools to s
func RegisterTools(s *server.MCPServer, c *catalog.Catalog) {
	t := &tools{catalog: c, resolver: threat.NewResolver(c)}
	s.AddTool(resolveThreatsTool(), t.handleResolveThreats)
	s.AddTool(lookupCardTool(), t.handleLookupCard)
	s.AddTool(searchCardsTool(), t.handleSearchCards)
	s.AddTool(filterMinionsTool(), t.handleFilterMinions)
}

// --- Tool definitions ---

func resolveThreatsTool() mcp.Tool {
	return mcp.NewTool("resolve_threats",
		mcp.WithDescription("List the minions, spells and weapons that can remove a minion when played on curve "+
			"(cost at most the target's cost, attack or damage at least its health), grouped by class and sorted by cost."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Exact name of the target minion")),
	)
}

func lookupCardTool() mcp.Tool {
	return mcp.NewTool("lookup_card",
		mcp.WithDescription("Return the raw data record of a card by exact name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Exact card name")),
	)
}

func searchCardsTool() mcp.Tool {
	return mcp.NewTool("search_cards",
		mcp.WithDescription("List card names containing a substring, ignoring case. The substring is matched literally."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Substring to look for")),
	)
}

func filterMinionsTool() mcp.Tool {
	return mcp.NewTool("filter_minions",
		mcp.WithDescription("List minions whose stats equal all of the given values. Omitted stats are not filtered."),
		mcp.WithNumber("attack", mcp.Description("Exact attack")),
		mcp.WithNumber("health", mcp.Description("Exact health")),
		mcp.WithNumber("cost", mcp.Description("Exact mana cost")),
	)
}

// --- Tool handlers ---

type classView struct {
	Class card.Class       `json:"class"`
	Cards []map[string]any `json:"cards"`
}

type threatsResponse struct {
	Target  map[string]any `json:"target"`
	Count   int            `json:"count"`
	Classes []classView    `json:"classes"`
}

func (t *tools) handleResolveThreats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	threats, err := t.resolver.Resolve(name)
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot resolve threats: %v", err), nil
	}

	groups := threats.Categorize()
	resp := threatsResponse{
		Target:  cardJSON(threats.Target),
		Count:   groups.Len(),
		Classes: make([]classView, 0, len(groups)),
	}
	for _, g := range groups {
		view := classView{Class: g.Class, Cards: make([]map[string]any, 0, len(g.Cards))}
		for _, c := range g.Cards {
			view.Cards = append(view.Cards, cardJSON(c))
		}
		resp.Classes = append(resp.Classes, view)
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *tools) handleLookupCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	rec, err := t.catalog.LookupExact(name)
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(rec)), nil
}

func (t *tools) handleSearchCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	resp := struct {
		Query   string   `json:"query"`
		Matches []string `json:"matches"`
	}{
		Query:   query,
		Matches: t.catalog.LookupPartial(query),
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (t *tools) handleFilterMinions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	criteria := map[string]int{}
	for _, key := range []string{"attack", "health", "cost"} {
		if _, ok := args[key]; ok {
			criteria[key] = request.GetInt(key, 0)
		}
	}

	minions, err := t.catalog.FilterMinions(criteria)
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}

	out := make([]map[string]any, 0, len(minions))
	for _, m := range minions {
		out = append(out, cardJSON(m))
	}
	return mcp.NewToolResultText(respondJSON(out)), nil
}

// cardJSON flattens a card into its JSON fields plus its type and display label
func cardJSON(c card.Card) map[string]any {
	m := map[string]any{}
	if data, err := json.Marshal(c); err == nil {
		_ = json.Unmarshal(data, &m)
	}
	m["type"] = string(c.Kind())
	m["label"] = c.String()
	return m
}

func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
