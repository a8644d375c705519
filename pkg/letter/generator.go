package letter

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/brokerlane/dealengine/pkg/format"
)

const defaultModel = "gemini-2.0-flash"

// Generator produces offer letters. When no API key is configured it is
// disabled and falls back to a deterministic template, so callers always get
// a letter.
type Generator struct {
	apiKey string
	model  string
	logger *zap.Logger
}

// NewGenerator builds a Generator. An empty apiKey disables the generative
// backend.
func NewGenerator(apiKey, model string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = defaultModel
	}
	return &Generator{apiKey: apiKey, model: model, logger: logger}
}

// Enabled reports whether the generative backend is configured.
func (g *Generator) Enabled() bool {
	return g.apiKey != ""
}

// Generate returns an offer letter for the request. Generation failures
// degrade to the deterministic fallback rather than surfacing an error to the
// caller; the strategy figures are what matter, not the prose.
func (g *Generator) Generate(ctx context.Context, req Request) string {
	if !g.Enabled() {
		return FallbackLetter(req)
	}

	text, err := g.generate(ctx, BuildPrompt(req))
	if err != nil {
		g.logger.Warn("letter generation failed, using fallback",
			zap.String("op", "letter.Generate"),
			zap.Error(err),
		)
		return FallbackLetter(req)
	}
	return text
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("letter generation failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty generation response")
	}
	return text, nil
}

// FallbackLetter renders a deterministic offer letter straight from the
// strategy figures. It follows the same "Deal 1:"/"Deal 2:"/"Deal 3:" heading
// contract as the generated variant.
func FallbackLetter(req Request) string {
	var b strings.Builder

	business := req.BusinessName
	if business == "" {
		business = "your business"
	}

	fmt.Fprintf(&b, "Dear Seller,\n\nThank you for the opportunity to discuss the purchase of %s. "+
		"Based on the figures we have exchanged, here are three structures we are prepared to "+
		"move forward on.\n\n", business)

	s := req.Strategy
	rec := s.Recommended

	b.WriteString("Deal 1: " + structureLabel(s.Structure) + "\n")
	if rec.CashDownAtClose != nil {
		fmt.Fprintf(&b, "  Cash at close: %s", format.USD(*rec.CashDownAtClose))
		if rec.CashDownPct != nil {
			fmt.Fprintf(&b, " (%.0f%% of price)", *rec.CashDownPct)
		}
		b.WriteString("\n")
	}
	if rec.NotePrincipal != nil {
		fmt.Fprintf(&b, "  Seller note: %s at %.1f%%\n", format.USD(*rec.NotePrincipal), rec.InterestPct)
	}
	if rec.TermYears != nil {
		fmt.Fprintf(&b, "  Term: %.0f years, fully amortizing\n", *rec.TermYears)
	}
	if rec.BridgeMonths > 0 {
		fmt.Fprintf(&b, "  Bridge: %d months interest-only with a balloon at month %d via bank refinance\n",
			rec.BridgeMonths, rec.BridgeMonths)
	}
	if rec.EquityCreditMonthly > 0 {
		fmt.Fprintf(&b, "  Equity credit: %s per month toward the down payment (capped at %s)\n",
			format.USD(rec.EquityCreditMonthly), format.USD(rec.EquityCreditCap))
	}

	b.WriteString("\nDeal 2: higher cash at close\n")
	b.WriteString("  We can raise the cash portion in exchange for a lower overall price or a " +
		"reduced note rate; happy to discuss where that trade lands.\n")

	b.WriteString("\nDeal 3: longer-term note\n")
	b.WriteString("  Alternatively, a longer amortization with a modest rate step-up keeps " +
		"early payments aligned with the business's cash flow.\n")

	b.WriteString("\nThese figures are indicative estimates based on the information shared to " +
		"date, not an appraisal or a binding offer.\n\nSincerely,\n")
	if req.BuyerName != "" {
		b.WriteString(req.BuyerName + "\n")
	} else {
		b.WriteString("The Buyer\n")
	}

	return b.String()
}
