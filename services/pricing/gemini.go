package pricing

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"meditrip/models"
	"meditrip/services/booking"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Fallback price deltas used when the model is unavailable or returns
// something unparseable.
var fallbackPrices = map[string]float64{
	"consultation":   300,
	"examination":    500,
	"surgery":        2000,
	"treatment":      1000,
	"rehabilitation": 800,
}

// GeminiEstimator prices plan adjustments via Gemini, falling back to a
// fixed table per adjustment type.
type GeminiEstimator struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

func NewGeminiEstimator(apiKey string, logger *zap.Logger) *GeminiEstimator {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Warn("gemini client unavailable, estimator will use fallback prices", zap.Error(err))
		return &GeminiEstimator{logger: logger}
	}
	return &GeminiEstimator{
		model:  client.GenerativeModel("models/gemini-1.5-pro"),
		logger: logger,
	}
}

var priceRe = regexp.MustCompile(`-?\d+(\.\d+)?`)

// EstimateAdjustment asks the model for a single numeric USD delta for the
// proposed change. Any failure degrades to the fallback table.
func (g *GeminiEstimator) EstimateAdjustment(ctx context.Context, order *models.Order, proposal booking.AdjustmentProposal) (float64, error) {
	if g.model == nil {
		return g.fallback(proposal.Type), nil
	}

	prompt := fmt.Sprintf(
		"A medical travel order currently totals %.2f %s with a medical fee of %.2f. "+
			"The patient requests a %s change: %q, from %q to %q. "+
			"Reply with only the additional cost in USD as a plain number.",
		order.TotalAmount, order.Currency, order.MedicalFee,
		proposal.Type, proposal.Reason, proposal.CurrentValue, proposal.NewValue)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Warn("gemini estimate failed, using fallback price",
			zap.String("type", proposal.Type), zap.Error(err))
		return g.fallback(proposal.Type), nil
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}

	match := priceRe.FindString(sb.String())
	if match == "" {
		return g.fallback(proposal.Type), nil
	}
	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return g.fallback(proposal.Type), nil
	}
	return price, nil
}

func (g *GeminiEstimator) fallback(adjustmentType string) float64 {
	if price, ok := fallbackPrices[adjustmentType]; ok {
		return price
	}
	return fallbackPrices["treatment"]
}
