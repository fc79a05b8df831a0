// Package stylist forwards shopper questions to a generative-language model
// primed with the live catalog. The chat surface treats every reply as
// successful text: whatever goes wrong behind the scenes, the shopper gets a
// friendly sentence, never an error.
package stylist

import (
	"context"
	"fmt"
	"strings"

	"github.com/sikawofie/shop-backend/internal/shop"
	"github.com/sikawofie/shop-backend/pkg/logger"
)

const (
	replyMissingKey = "I'm sorry, I cannot provide advice at the moment (API Key missing). However, feel free to browse our collection!"
	replyTrouble    = "I'm having a little trouble connecting to the fashion mainframe. Please ask again in a moment."
	replyThinking   = "I'm thinking about the best look for you..."
)

// Turn is one prior exchange in the chat, tagged user or assistant.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateInput is the assembled prompt handed to the model client.
type GenerateInput struct {
	SystemInstruction string
	History           []Turn
	Query             string
}

// GenerativeClient performs one best-effort model call.
type GenerativeClient interface {
	Configured() bool
	GenerateContent(ctx context.Context, input GenerateInput) (string, error)
}

// CatalogSource supplies the live inventory for prompt grounding.
type CatalogSource interface {
	Catalog() []shop.Product
}

// Service answers outfit questions.
type Service interface {
	Advice(ctx context.Context, query string, history []Turn) string
}

type service struct {
	client  GenerativeClient
	catalog CatalogSource
	logg    *logger.Logger
}

// NewService builds the stylist service.
func NewService(client GenerativeClient, catalog CatalogSource, logg *logger.Logger) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog source required")
	}
	return &service{client: client, catalog: catalog, logg: logg}, nil
}

// Advice returns stylist text for the query. Missing credentials and
// transport or service failures both collapse into canned replies; callers
// never see an error.
func (s *service) Advice(ctx context.Context, query string, history []Turn) string {
	if s.client == nil || !s.client.Configured() {
		return replyMissingKey
	}

	text, err := s.client.GenerateContent(ctx, GenerateInput{
		SystemInstruction: s.systemInstruction(),
		History:           history,
		Query:             query,
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "stylist advice call failed", err)
		}
		return replyTrouble
	}
	if strings.TrimSpace(text) == "" {
		return replyThinking
	}
	return text
}

func (s *service) systemInstruction() string {
	inventory := make([]string, 0, 8)
	for _, p := range s.catalog.Catalog() {
		inventory = append(inventory, fmt.Sprintf("%s (%s) - $%s", p.Name, p.Category, p.Price.StringFixed(2)))
	}

	var b strings.Builder
	b.WriteString(`You are "Sika", the expert fashion stylist for SIKAWOFIE COLLECTION.
The brand sells Sneakers, Tops, and Jeans.
Your goal is to help customers choose outfits from our inventory.

Here is our current inventory list:
`)
	b.WriteString(strings.Join(inventory, ", "))
	b.WriteString(`

1. Be friendly, stylish, and concise.
2. Suggest specific products from our inventory by name if relevant.
3. If the user asks about something we don't sell (like hats or watches), politely steer them back to our Sneakers, Tops, and Jeans.
4. Keep responses under 100 words.`)
	return b.String()
}
