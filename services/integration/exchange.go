package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"meditrip/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const ratesCacheTTL = time.Hour

// ExchangeService fetches currency rate tables from exchangerate-api.com,
// caching each base currency's table for an hour.
type ExchangeService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Cache   *redis.Client
	Logger  *zap.Logger
}

type exchangeAPIResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
}

// GetRates returns the rate table for a base currency.
func (s *ExchangeService) GetRates(ctx context.Context, base string) (*models.ExchangeRates, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "USD"
	}

	cacheKey := "exchange:rates:" + base
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var rates models.ExchangeRates
			if err := json.Unmarshal([]byte(cached), &rates); err == nil {
				return &rates, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/%s/latest/%s", s.BaseURL, s.APIKey, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange provider unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange provider returned status %d", resp.StatusCode)
	}

	raw, err := readAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiResp exchangeAPIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode exchange response: %w", err)
	}
	if apiResp.Result != "success" {
		return nil, fmt.Errorf("exchange provider rejected request for base %s", base)
	}

	rates := &models.ExchangeRates{
		Base:      apiResp.BaseCode,
		Rates:     apiResp.ConversionRates,
		Timestamp: time.Unix(apiResp.TimeLastUpdateUnix, 0),
	}

	if s.Cache != nil {
		if b, err := json.Marshal(rates); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, b, ratesCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache exchange rates", zap.String("base", base), zap.Error(err))
			}
		}
	}
	return rates, nil
}

// Convert converts an amount between two currencies using the cached table.
func (s *ExchangeService) Convert(ctx context.Context, amount float64, from, to string) (*models.CurrencyConversion, error) {
	to = strings.ToUpper(strings.TrimSpace(to))
	rates, err := s.GetRates(ctx, from)
	if err != nil {
		return nil, err
	}
	rate, ok := rates.Rates[to]
	if !ok {
		return nil, fmt.Errorf("currency %s is not supported", to)
	}
	return &models.CurrencyConversion{
		Amount: math.Round(amount*rate*100) / 100,
		From:   rates.Base,
		To:     to,
		Rate:   rate,
	}, nil
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, 4<<20))
}
