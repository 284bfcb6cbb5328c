// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package and the API middleware.
//
// The infrastructure package is organized by technical concern:
//
// - ai/gemini: Grounded generator backed by the google.golang.org/genai SDK
// - http/standard: HTTP client with a fixed user agent, used by the SDK
// - logger/structured: logrus logger with optional lumberjack file rotation
// - ratelimit/memory: Token buckets per client kept in go-cache
// - ratelimit/redis: Fixed-window counters in Redis for multi-instance setups
//
// # Generator
//
//	gen, err := gemini.NewClient(ctx, gemini.Config{
//	    APIKey:  key,
//	    Model:   "gemini-2.5-flash",
//	    Timeout: time.Minute,
//	}, logger)
//	resp, err := gen.GenerateGrounded(ctx, prompt)
//
// # Rate Limiters
//
//	limiter, err := memory.NewLimiter(30, time.Minute)
//	allowed, err := limiter.Allow(ctx, clientIP)
//
// # Logger
//
//	logger, err := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "keyword": "yazılım",
//	})
//
package infrastructure
