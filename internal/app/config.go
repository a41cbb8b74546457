package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/xenking/membership-order/internal/domain/discount"
	"github.com/xenking/membership-order/internal/domain/member"
)

// Config holds the complete application configuration, loadable from
// environment variables (SHOP_ prefix), flags, or YAML config files.
type Config struct {
	Wiring   string `default:"container" usage:"Composition root: container or dig"`
	Discount DiscountConfig
	Demo     DemoConfig
}

// Composition roots selectable with Config.Wiring.
const (
	WiringContainer = "container"
	WiringDig       = "dig"
)

// DiscountConfig selects the discount policy injected into the order service.
type DiscountConfig struct {
	Kind    string `default:"rate" usage:"Discount policy: fixed or rate"`
	Amount  int64  `default:"1000" usage:"Amount granted by the fixed policy" flag:"discount-amount"`
	Percent string `default:"10"   usage:"Percent granted by the rate policy" flag:"discount-percent"`
	Grade   string `default:"VIP"  usage:"Member grade eligible for the rate policy, empty for all" flag:"discount-grade"`
}

// DemoConfig describes the member and the order placed by the entry point.
type DemoConfig struct {
	MemberID   int64  `default:"1"       usage:"Demo member id" flag:"member-id"`
	MemberName string `default:"memberA" usage:"Demo member name" flag:"member-name"`
	Grade      string `default:"VIP"     usage:"Demo member grade (BASIC or VIP)" flag:"member-grade"`
	ItemName   string `default:"itemA"   usage:"Ordered item name" flag:"item-name"`
	ItemPrice  int64  `default:"10000"   usage:"Ordered item price" flag:"item-price"`
}

func (c DiscountConfig) policy() discount.Config {
	return discount.Config{
		Kind:    discount.Kind(c.Kind),
		Amount:  c.Amount,
		Percent: c.Percent,
		Grade:   c.Grade,
	}
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files, then validates it.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "SHOP",
		Files:     []string{"config.yaml", "/etc/shop/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(ac aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, ac).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration that cannot be wired.
func (c *Config) Validate() error {
	switch c.Wiring {
	case WiringContainer, WiringDig, "":
	default:
		return errors.Errorf("unsupported wiring: %q", c.Wiring)
	}
	if _, err := discount.New(c.Discount.policy()); err != nil {
		return errors.Wrap(err, "discount")
	}
	if _, err := member.ParseGrade(c.Demo.Grade); err != nil {
		return errors.Wrap(err, "demo")
	}
	return nil
}
