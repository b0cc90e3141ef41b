package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultDBName = "songrelay"

type Env struct {
	AppEnv          string        `mapstructure:"APP_ENV"`
	Port            string        `mapstructure:"PORT"`
	MongoURI        string        `mapstructure:"MONGODB_URI"`
	DBName          string        `mapstructure:"DB_NAME"`
	BotToken        string        `mapstructure:"BOT_TOKEN"`
	TelegramAPIBase string        `mapstructure:"TELEGRAM_API_BASE"`
	ContextTimeout  int           `mapstructure:"CONTEXT_TIMEOUT"`
	PollTimeout     int           `mapstructure:"POLL_TIMEOUT"`
	PollInterval    time.Duration `mapstructure:"POLL_INTERVAL"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
}

var envDefaults = map[string]interface{}{
	"APP_ENV":           "development",
	"PORT":              "5000",
	"MONGODB_URI":       "mongodb://localhost:27017/" + defaultDBName,
	"DB_NAME":           "",
	"BOT_TOKEN":         "",
	"TELEGRAM_API_BASE": "https://api.telegram.org",
	"CONTEXT_TIMEOUT":   10,
	"POLL_TIMEOUT":      60,
	"POLL_INTERVAL":     "2s",
	"LOG_LEVEL":         "info",
}

// NewEnv loads envFile into the process environment when it exists, then
// reads every setting from the environment. Flags in flags, when set, take
// precedence; only "port" is bound.
func NewEnv(envFile string, flags *pflag.FlagSet) (*Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	if flags != nil {
		if port := flags.Lookup("port"); port != nil {
			if err := v.BindPFlag("PORT", port); err != nil {
				return nil, fmt.Errorf("bind port flag: %w", err)
			}
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("environment can't be loaded: %w", err)
	}

	if env.DBName == "" {
		env.DBName = databaseFromURI(env.MongoURI)
	}
	if env.ContextTimeout <= 0 {
		env.ContextTimeout = envDefaults["CONTEXT_TIMEOUT"].(int)
	}
	return &env, nil
}

func (e *Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

func (e *Env) PollingEnabled() bool {
	return e.BotToken != ""
}

func (e *Env) Timeout() time.Duration {
	return time.Duration(e.ContextTimeout) * time.Second
}

// databaseFromURI mirrors the driver's behaviour of selecting the database
// named in the connection string path.
func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return defaultDBName
	}
	return cs.Database
}
