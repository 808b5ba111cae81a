package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"HelpdeskGolang/internal/api/knowledge"
	"HelpdeskGolang/internal/config"
	contextPkg "HelpdeskGolang/pkg/context"
	"HelpdeskGolang/pkg/log"
	"HelpdeskGolang/pkg/redis"

	"github.com/joho/godotenv"
	"golang.org/x/net/context"
)

var evaluationQueries = []string{
	"My laptop wont start up",
	"VPN connection timeout error",
	"I forgot my password",
	"Cannot install Adobe software",
	"Internet is very slow",
	"Emails not syncing",
	"Printer paper jam",
	"Need access to Microsoft Teams",
	"Computer making strange noise",
	"Cannot connect to office wifi",
}

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	options := []config.EngineOption{
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithUtils(),
	}

	if os.Getenv("DB_HOST") != "" {
		options = append(options, config.WithDatabase())
	}
	if os.Getenv("REDIS_ADDRESS") != "" {
		options = append(options, config.WithRedisServer(redis.New()))
	}
	if os.Getenv("AWS_REGION") != "" {
		options = append(options, config.WithS3Client())
	}
	if os.Getenv("GEMINI_API_KEY") != "" {
		options = append(options, config.WithGeminiClient())
	}

	engine, err := config.NewEngine(options...)
	if err != nil {
		logger.Fatalf("Failed to build engine: %v", err)
	}

	if err := engine.RegisterServices(); err != nil {
		logger.Fatalf("Failed to register services: %v", err)
	}

	ctx := contextPkg.NewRequestContext(context.Background())

	if err := engine.Knowledge().EnsureSeedArticles(ctx); err != nil {
		logger.Errorf("Failed to seed knowledge base: %v", err)
	}

	runEvaluation(ctx, engine, logger.Infof)

	logger.Info("Triage engine ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down triage engine...")
}

// runEvaluation classifies a fixed set of queries and ranks the seed
// articles against one of them, as a smoke check of the full pipeline.
func runEvaluation(ctx context.Context, engine *config.Engine, printf func(string, ...interface{})) {
	total := 0
	for _, query := range evaluationQueries {
		result := engine.Classifier().Classify(ctx, query)
		total += result.Confidence
		printf("classify %-35q => %-21s %3d%% priority=%-6s team=%-13s method=%s",
			query, result.Category, result.Confidence, result.Priority, result.AssignedTeam, result.Method)
	}
	printf("average confidence: %d%%", total/len(evaluationQueries))

	query := "I forgot my password and cannot login"
	results := engine.Knowledge().Search(ctx, query, knowledge.SeedArticles())
	titles := make([]string, 0, len(results))
	for _, result := range results {
		titles = append(titles, result.Title)
	}
	printf("search %q => [%s]", query, strings.Join(titles, ", "))
}
