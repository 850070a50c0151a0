package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	SQLite    SQLiteConfig
	Providers ProvidersConfig
	Scoring   ScoringConfig
	LLM       LLMConfig
	Report    ReportConfig
	Companies CompaniesConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTLMin   int
}

type SQLiteConfig struct {
	Path string
}

type ProvidersConfig struct {
	Enrichment EnrichmentConfig
	News       NewsConfig
	Jobs       JobsConfig
	Website    WebsiteConfig
	LinkedIn   LinkedInConfig
}

type EnrichmentConfig struct {
	APIKey     string
	BaseURL    string
	TimeoutSec int
}

type NewsConfig struct {
	APIKey      string
	BaseURL     string
	TimeoutSec  int
	DaysBack    int
	MaxArticles int
}

type JobsConfig struct {
	APIKey     string
	Host       string
	TimeoutSec int
	Pages      int
}

type WebsiteConfig struct {
	TimeoutSec int
}

type LinkedInConfig struct {
	Enabled      bool
	APIKey       string
	DatasetID    string
	BaseURL      string
	PollInterval int
	PollAttempts int
}

type ScoringConfig struct {
	Thresholds []float64
	Categories []string
}

type LLMConfig struct {
	Enabled     bool
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	TimeoutSec  int
}

type ReportConfig struct {
	Enabled    bool
	TimeoutSec int
}

type CompaniesConfig struct {
	Path string
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/prospect-intel")

	viper.SetEnvPrefix("PROSPECT_INTEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.Scoring.Thresholds)+1 != len(config.Scoring.Categories) {
		return nil, fmt.Errorf("scoring config: %d thresholds require %d categories, got %d",
			len(config.Scoring.Thresholds), len(config.Scoring.Thresholds)+1, len(config.Scoring.Categories))
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 120)
	viper.SetDefault("server.bodyLimit", 10485760)

	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlMin", 15)

	viper.SetDefault("sqlite.path", "./data/prospect_intelligence.db")

	viper.SetDefault("providers.enrichment.baseURL", "https://company.clearbit.com/v2/companies")
	viper.SetDefault("providers.enrichment.timeoutSec", 10)

	viper.SetDefault("providers.news.baseURL", "https://newsapi.org/v2")
	viper.SetDefault("providers.news.timeoutSec", 15)
	viper.SetDefault("providers.news.daysBack", 30)
	viper.SetDefault("providers.news.maxArticles", 50)

	viper.SetDefault("providers.jobs.host", "jsearch.p.rapidapi.com")
	viper.SetDefault("providers.jobs.timeoutSec", 30)
	viper.SetDefault("providers.jobs.pages", 2)

	viper.SetDefault("providers.website.timeoutSec", 20)

	viper.SetDefault("providers.linkedin.enabled", false)
	viper.SetDefault("providers.linkedin.baseURL", "https://api.brightdata.com")
	viper.SetDefault("providers.linkedin.pollInterval", 10)
	viper.SetDefault("providers.linkedin.pollAttempts", 10)

	// Category cutoffs differ between deployments, so they stay configurable.
	viper.SetDefault("scoring.thresholds", []float64{35, 50, 65, 80})
	viper.SetDefault("scoring.categories", []string{
		"Very Low - Not yet ready for advanced AI",
		"Low - Early stage of AI journey",
		"Moderate - Building AI capabilities",
		"High - Strong potential for AI adoption",
		"Very High - Prime candidate for AI platforms",
	})

	viper.SetDefault("llm.enabled", true)
	viper.SetDefault("llm.model", "gpt-4-turbo-preview")
	viper.SetDefault("llm.temperature", 0.4)
	viper.SetDefault("llm.maxTokens", 1024)
	viper.SetDefault("llm.timeoutSec", 30)

	viper.SetDefault("report.enabled", true)
	viper.SetDefault("report.timeoutSec", 60)

	viper.SetDefault("companies.path", "./config/companies.json")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
