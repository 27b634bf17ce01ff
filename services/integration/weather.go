package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"meditrip/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const weatherCacheTTL = 10 * time.Minute

// WeatherService fetches city weather from OpenWeatherMap, with a short-lived
// Redis cache in front to stay inside the free-tier quota.
type WeatherService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Cache   *redis.Client
	Logger  *zap.Logger
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Visibility int `json:"visibility"`
}

// GetCurrentWeather returns the current weather for a city, serving cached
// snapshots when fresh.
func (s *WeatherService) GetCurrentWeather(ctx context.Context, city string) (*models.WeatherData, error) {
	cacheKey := "weather:current:" + city
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var data models.WeatherData
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				return &data, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		s.BaseURL, url.QueryEscape(city), s.APIKey)
	raw, err := s.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp openWeatherResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("weather response for %s has no conditions", city)
	}

	data := &models.WeatherData{
		Temperature:   resp.Main.Temp,
		FeelsLike:     resp.Main.FeelsLike,
		Humidity:      resp.Main.Humidity,
		Pressure:      resp.Main.Pressure,
		WindSpeed:     resp.Wind.Speed,
		WindDirection: resp.Wind.Deg,
		Condition:     resp.Weather[0].Main,
		Description:   resp.Weather[0].Description,
		Icon:          resp.Weather[0].Icon,
		Visibility:    resp.Visibility,
		Timestamp:     time.Now(),
		City:          resp.Name,
		Country:       resp.Sys.Country,
	}

	s.cacheSet(ctx, cacheKey, data, weatherCacheTTL)
	return data, nil
}

type openWeatherForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Visibility int `json:"visibility"`
	} `json:"list"`
}

// GetForecast returns one midday snapshot per day for up to days days. The
// upstream forecast ticks every 3 hours, 8 entries per day.
func (s *WeatherService) GetForecast(ctx context.Context, city string, days int) ([]models.WeatherData, error) {
	if days <= 0 || days > 5 {
		days = 5
	}

	cacheKey := fmt.Sprintf("weather:forecast:%s:%d", city, days)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var data []models.WeatherData
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				return data, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric&cnt=%d",
		s.BaseURL, url.QueryEscape(city), s.APIKey, days*8)
	raw, err := s.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp openWeatherForecastResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	var data []models.WeatherData
	for i, entry := range resp.List {
		// Midday entry of each day.
		if i%8 != 4 {
			continue
		}
		if len(entry.Weather) == 0 {
			continue
		}
		data = append(data, models.WeatherData{
			Temperature:   entry.Main.Temp,
			FeelsLike:     entry.Main.FeelsLike,
			Humidity:      entry.Main.Humidity,
			Pressure:      entry.Main.Pressure,
			WindSpeed:     entry.Wind.Speed,
			WindDirection: entry.Wind.Deg,
			Condition:     entry.Weather[0].Main,
			Description:   entry.Weather[0].Description,
			Icon:          entry.Weather[0].Icon,
			Visibility:    entry.Visibility,
			Timestamp:     time.Unix(entry.Dt, 0),
			City:          city,
		})
	}

	s.cacheSet(ctx, cacheKey, data, weatherCacheTTL)
	return data, nil
}

func (s *WeatherService) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather provider unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}
	return readAll(resp.Body)
}

func (s *WeatherService) cacheSet(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, b, ttl).Err(); err != nil {
		s.Logger.Warn("failed to cache weather snapshot", zap.String("key", key), zap.Error(err))
	}
}
