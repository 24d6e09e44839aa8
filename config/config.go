package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	Server      ServerConfig  `yaml:"server"`
	GeminiModel string        `yaml:"gemini_model"`
	Arxiv       ArxivConfig   `yaml:"arxiv"`
	Ingest      IngestConfig  `yaml:"ingest"`

	// 환경변수에서만 읽는 값들. config.yaml 에는 두지 않는다.
	DatabaseURL  string `yaml:"-"`
	GeminiAPIKey string `yaml:"-"`
	CronSecret   string `yaml:"-"`
	KafkaBrokers string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// ArxivConfig 는 arXiv 검색 API 호출에 대한 설정을 정의한다.
type ArxivConfig struct {
	// BaseURL 은 arXiv 검색 API 엔드포인트이다.
	BaseURL string `yaml:"base_url"`

	// RateLimitSeconds 는 연속 호출 시작 시점 사이의 최소 간격(초)이다.
	// 0 이하면 간격 제한 없음으로 간주한다.
	RateLimitSeconds int `yaml:"rate_limit_seconds"`

	// MaxResults 는 필드당 한 번의 검색으로 가져올 후보 논문 수이다.
	MaxResults int `yaml:"max_results"`
}

// IngestConfig 는 일일 수집 배치의 동작 설정을 정의한다.
type IngestConfig struct {
	// InterFieldDelaySeconds 는 필드 처리 사이의 고정 대기 시간(초)이다.
	InterFieldDelaySeconds int `yaml:"inter_field_delay_seconds"`

	// FetchFullText 가 true 면 선정된 논문의 HTML 본문 추출을 시도한다.
	FetchFullText bool `yaml:"fetch_full_text"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)

	c.DatabaseURL = os.Getenv("DATABASE_URL")
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.CronSecret = os.Getenv("CRON_SECRET")
	c.KafkaBrokers = os.Getenv("KAFKA_BOOTSTRAP_SERVERS")

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-flash"
	}
	if c.Arxiv.BaseURL == "" {
		c.Arxiv.BaseURL = "http://export.arxiv.org/api/query"
	}
	if c.Arxiv.RateLimitSeconds == 0 {
		c.Arxiv.RateLimitSeconds = 3
	}
	if c.Arxiv.MaxResults == 0 {
		c.Arxiv.MaxResults = 50
	}
	if c.Ingest.InterFieldDelaySeconds == 0 {
		c.Ingest.InterFieldDelaySeconds = 1
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
