// ABOUTME: MCP server exposing the automation API as tools over stdio.
// ABOUTME: Tool inputs and outputs are plain structs so the SDK can infer their JSON schemas.
package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/2389-research/reelboard/board/core"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CardInput carries the optional fields of a card in tool calls.
type CardInput struct {
	Title         *string `json:"title,omitempty" jsonschema:"short working title of the script"`
	Hook          *string `json:"hook,omitempty" jsonschema:"opening line of the video"`
	Platform      *string `json:"platform,omitempty" jsonschema:"one of IG, TT, YT, FB"`
	ViralityScore *int    `json:"viralityScore,omitempty" jsonschema:"expected reach from 0 to 10"`
	Content       *string `json:"content,omitempty" jsonschema:"full script body"`
	Notes         *string `json:"notes,omitempty" jsonschema:"free-form notes"`
	Status        *string `json:"status,omitempty" jsonschema:"stage: ideas, ready, filmed, posted or analytics"`
	Views         *int64  `json:"views,omitempty"`
	Likes         *int64  `json:"likes,omitempty"`
	Comments      *int64  `json:"comments,omitempty"`
	Shares        *int64  `json:"shares,omitempty"`
}

// Fields converts the input into card fields, resolving platform and stage
// names. Analytics counters not given keep the value from current.
func (in CardInput) Fields(current core.Analytics) (core.CardFields, error) {
	f := core.CardFields{
		Title:         in.Title,
		Hook:          in.Hook,
		ViralityScore: in.ViralityScore,
		Content:       in.Content,
		Notes:         in.Notes,
	}
	if in.Platform != nil {
		p, err := core.ParsePlatform(*in.Platform)
		if err != nil {
			return core.CardFields{}, err
		}
		f.Platform = &p
	}
	if in.Status != nil {
		st, err := core.ParseStage(*in.Status)
		if err != nil {
			return core.CardFields{}, err
		}
		f.Status = &st
	}
	if in.Views != nil || in.Likes != nil || in.Comments != nil || in.Shares != nil {
		a := current
		setCount(&a.Views, in.Views)
		setCount(&a.Likes, in.Likes)
		setCount(&a.Comments, in.Comments)
		setCount(&a.Shares, in.Shares)
		f.Analytics = &a
	}
	return f, nil
}

func setCount(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

// CardRecord is a card as returned by the tools.
type CardRecord struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Hook          string         `json:"hook"`
	Platform      string         `json:"platform"`
	ViralityScore int            `json:"viralityScore"`
	Content       string         `json:"content"`
	Notes         string         `json:"notes"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"createdAt"`
	Analytics     core.Analytics `json:"analytics"`
}

func newCardRecord(c core.Card) CardRecord {
	return CardRecord{
		ID:            c.ID,
		Title:         c.Title,
		Hook:          c.Hook,
		Platform:      string(c.Platform),
		ViralityScore: c.ViralityScore,
		Content:       c.Content,
		Notes:         c.Notes,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt.Format(time.RFC3339Nano),
		Analytics:     c.Analytics,
	}
}

// AddCardOutput is the result of add_card.
type AddCardOutput struct {
	ID string `json:"id"`
}

// UpdateCardInput is the argument of update_card.
type UpdateCardInput struct {
	ID      string    `json:"id" jsonschema:"id of the card to change"`
	Changes CardInput `json:"changes" jsonschema:"fields to overwrite; omitted fields are kept"`
}

// UpdateCardOutput is the result of update_card.
type UpdateCardOutput struct {
	Updated bool `json:"updated"`
}

// GetCardsInput is the (empty) argument of get_cards.
type GetCardsInput struct{}

// GetCardsOutput is the result of get_cards.
type GetCardsOutput struct {
	Cards []CardRecord `json:"cards"`
}

// AutoPopulateInput is the (empty) argument of auto_populate.
type AutoPopulateInput struct{}

// AutoPopulateOutput is the result of auto_populate.
type AutoPopulateOutput struct {
	Added int `json:"added"`
}

// NewMCPServer builds an MCP server with the board tools registered.
func NewMCPServer(api *API, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "reelboard", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_card",
		Description: "Add a script card to the ideas stage. Returns the new card id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in CardInput) (*mcp.CallToolResult, AddCardOutput, error) {
		fields, err := in.Fields(core.Analytics{})
		if err != nil {
			return nil, AddCardOutput{}, err
		}
		id, err := api.AddCard(fields)
		if err != nil {
			return nil, AddCardOutput{}, err
		}
		return nil, AddCardOutput{ID: id}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_card",
		Description: "Change fields of an existing card, including its stage. Reports whether the card existed.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in UpdateCardInput) (*mcp.CallToolResult, UpdateCardOutput, error) {
		if in.ID == "" {
			return nil, UpdateCardOutput{}, fmt.Errorf("id is required")
		}
		var current core.Analytics
		for _, c := range api.GetCards() {
			if c.ID == in.ID {
				current = c.Analytics
				break
			}
		}
		fields, err := in.Changes.Fields(current)
		if err != nil {
			return nil, UpdateCardOutput{}, err
		}
		ok, err := api.UpdateCard(in.ID, fields)
		if err != nil {
			return nil, UpdateCardOutput{}, err
		}
		return nil, UpdateCardOutput{Updated: ok}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_cards",
		Description: "List every card on the board in collection order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in GetCardsInput) (*mcp.CallToolResult, GetCardsOutput, error) {
		cards := api.GetCards()
		out := GetCardsOutput{Cards: make([]CardRecord, 0, len(cards))}
		for _, c := range cards {
			out.Cards = append(out.Cards, newCardRecord(c))
		}
		return nil, out, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "auto_populate",
		Description: "Reserved for generating new script ideas automatically. Currently adds nothing.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in AutoPopulateInput) (*mcp.CallToolResult, AutoPopulateOutput, error) {
		n, err := api.AutoPopulate(ctx)
		if err != nil {
			return nil, AutoPopulateOutput{}, err
		}
		return nil, AutoPopulateOutput{Added: n}, nil
	})

	return server
}

// ServeStdio runs the MCP server on stdin/stdout until ctx is done or the
// client disconnects.
func ServeStdio(ctx context.Context, api *API, version string) error {
	server := NewMCPServer(api, version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
