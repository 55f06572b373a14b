package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Port string
	} `mapstructure:"http"`

	Sales struct {
		TaxRate     string `mapstructure:"tax_rate"`
		RecentLimit int    `mapstructure:"recent_limit"`
	} `mapstructure:"sales"`

	Seed struct {
		Enabled bool
	} `mapstructure:"seed"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads PHARMACY_* environment variables over the defaults, e.g.
// PHARMACY_HTTP_PORT or PHARMACY_SALES_TAX_RATE. A non-empty path adds a
// config file underneath the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("http.port", "3000")
	v.SetDefault("sales.tax_rate", "0.05")
	v.SetDefault("sales.recent_limit", 10)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("metrics.enabled", true)

	v.SetEnvPrefix("PHARMACY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if _, err := c.TaxRate(); err != nil {
		return c, err
	}
	if _, err := c.Location(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) TaxRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.Sales.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: sales.tax_rate %q: %w", c.Sales.TaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: sales.tax_rate %q is negative", c.Sales.TaxRate)
	}
	return rate, nil
}

// Location is the timezone that bounds "today" and "this month".
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: app.timezone %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}
