// Command cachecheck hits the cached public endpoints of a running server twice
// and confirms the Redis entries appear after the first call.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"festtix/internal/shared/constants"
	"festtix/internal/tickets"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type CheckResult struct {
	Endpoint   string        `json:"endpoint"`
	CacheKey   string        `json:"cache_key"`
	ColdTime   time.Duration `json:"cold_time"`
	WarmTime   time.Duration `json:"warm_time"`
	KeyPresent bool          `json:"key_present"`
	TTL        time.Duration `json:"ttl"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
}

type CheckSuite struct {
	BaseURL string
	Redis   *redis.Client
	HTTP    *http.Client
	Results []CheckResult
}

func main() {
	_ = godotenv.Load()

	suite := &CheckSuite{
		BaseURL: getEnv("CACHECHECK_BASE_URL", "http://localhost:8080/api/v1"),
		Redis: redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		}),
		HTTP: &http.Client{Timeout: 30 * time.Second},
	}
	defer suite.Redis.Close()

	ctx := context.Background()
	if err := suite.Redis.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	fmt.Println("✅ Redis connection: OK")

	suite.check(ctx, "/days", constants.CACHE_KEY_EVENT_DAYS_ACTIVE)
	for _, day := range tickets.AllDays() {
		suite.check(ctx, "/vip/availability?day="+day.String(), constants.BuildVIPAvailabilityKey(day.String()))
	}

	suite.report()
}

// check clears key, calls the endpoint cold and warm, then inspects Redis.
func (s *CheckSuite) check(ctx context.Context, endpoint, key string) {
	fmt.Printf("\n🔍 %s\n", endpoint)
	result := CheckResult{Endpoint: endpoint, CacheKey: key}

	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		result.Error = err.Error()
		s.Results = append(s.Results, result)
		return
	}

	cold, err := s.get(endpoint)
	if err != nil {
		result.Error = err.Error()
		s.Results = append(s.Results, result)
		fmt.Printf("   ❌ %v\n", err)
		return
	}
	warm, err := s.get(endpoint)
	if err != nil {
		result.Error = err.Error()
		s.Results = append(s.Results, result)
		fmt.Printf("   ❌ %v\n", err)
		return
	}
	result.ColdTime, result.WarmTime = cold, warm

	ttl, err := s.Redis.TTL(ctx, key).Result()
	if err == nil && ttl > 0 {
		result.KeyPresent = true
		result.TTL = ttl
	}
	result.Success = result.KeyPresent
	s.Results = append(s.Results, result)

	icon := "🔥"
	if !result.KeyPresent {
		icon = "❓"
	}
	fmt.Printf("   %s cold %v, warm %v, ttl %v\n", icon, cold, warm, ttl)
}

func (s *CheckSuite) get(endpoint string) (time.Duration, error) {
	start := time.Now()
	resp, err := s.HTTP.Get(s.BaseURL + endpoint)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return 0, err
	}
	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return time.Since(start), nil
}

func (s *CheckSuite) report() {
	fmt.Println("\n📊 CACHE REPORT")
	fmt.Println("===============")

	passed := 0
	for _, r := range s.Results {
		if r.Success {
			passed++
		}
	}
	fmt.Printf("Checked: %d, cached: %d\n", len(s.Results), passed)

	path := getEnv("CACHECHECK_REPORT", "cachecheck_results.json")
	data, err := json.MarshalIndent(s.Results, "", "  ")
	if err != nil {
		log.Printf("failed to encode report: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("failed to write report: %v", err)
		return
	}
	fmt.Printf("💾 Detailed results saved to %s\n", path)

	if passed != len(s.Results) {
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
